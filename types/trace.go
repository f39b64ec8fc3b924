package types

// Step is a single decision point of an episode: the observation the
// agent acted on, the action it took and the reward it received.
type Step struct {
	Observation *State
	Action      *Action
	Reward      float64
}

// Trace of an episode as a sequence of steps. The sum of the step
// rewards is the episode return.
type Trace struct {
	steps []Step
	ret   float64
}

func NewTrace() *Trace {
	return &Trace{
		steps: make([]Step, 0),
	}
}

func (t *Trace) Append(observation *State, action *Action, reward float64) {
	t.steps = append(t.steps, Step{
		Observation: observation,
		Action:      action,
		Reward:      reward,
	})
	t.ret += reward
}

func (t *Trace) Len() int {
	return len(t.steps)
}

func (t *Trace) Get(i int) (Step, bool) {
	if i < 0 || i >= len(t.steps) {
		return Step{}, false
	}
	return t.steps[i], true
}

func (t *Trace) Last() (Step, bool) {
	if len(t.steps) == 0 {
		return Step{}, false
	}
	return t.steps[len(t.steps)-1], true
}

// Return is the sum of rewards over the episode.
func (t *Trace) Return() float64 {
	return t.ret
}
