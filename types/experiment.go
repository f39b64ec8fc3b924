package types

import "fmt"

// Experiment pairs an Agent with an Environment under a name and runs
// episodes against them.
type Experiment struct {
	Name        string
	environment Environment
	agent       Agent
}

func NewExperiment(name string, environment Environment, agent Agent) *Experiment {
	return &Experiment{
		Name:        name,
		environment: environment,
		agent:       agent,
	}
}

func (e *Experiment) Agent() Agent {
	return e.agent
}

// RunEpisode drives one episode: observe, select an action, apply it,
// feed the reward back, until the environment reports the end of the
// episode or the horizon is reached. A horizon of 0 or less means
// unbounded; environments without a reachable terminal state are the
// caller's responsibility.
func (e *Experiment) RunEpisode(horizon int) *Trace {
	e.environment.StartNewEpisode()
	e.agent.StartNewEpisode()
	trace := NewTrace()

	for step := 0; !e.environment.EndOfEpisode(); step++ {
		if horizon > 0 && step >= horizon {
			break
		}
		observation := e.environment.GetObservation()
		actions := e.environment.GetActions()
		action := e.agent.Act(observation, actions)
		reward := e.environment.React(action)
		e.agent.ObserveReward(e.environment.GetObservation(), reward)
		trace.Append(observation, action, reward)
	}
	return trace
}

// Run executes the given number of episodes and returns their traces.
func (e *Experiment) Run(episodes, horizon int) []*Trace {
	traces := make([]*Trace, episodes)
	for i := 0; i < episodes; i++ {
		traces[i] = e.RunEpisode(horizon)
		fmt.Printf("\rExp:%s, Episode:%d/%d, Return:%6.2f, Steps:%3d",
			e.Name, i+1, episodes, traces[i].Return(), traces[i].Len())
	}
	fmt.Println("")
	return traces
}

// Comparison runs a set of experiments with the same episode budget,
// analyzes their traces and hands the datasets to a comparator.
type Comparison struct {
	Experiments []*Experiment
	analyzer    Analyzer
	comparator  Comparator
}

func NewComparison(analyzer Analyzer, comparator Comparator) *Comparison {
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzer:    analyzer,
		comparator:  comparator,
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) Run(runs, episodes, horizon int) {
	for run := 0; run < runs; run++ {
		fmt.Printf("Run %d\n", run+1)
		names := make([]string, len(c.Experiments))
		datasets := make([]DataSet, len(c.Experiments))
		for i, e := range c.Experiments {
			traces := e.Run(episodes, horizon)
			names[i] = e.Name
			datasets[i] = c.analyzer(run, e.Name, traces)
		}
		if c.comparator != nil {
			c.comparator(run, names, datasets)
		}
	}
}
