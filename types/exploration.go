package types

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// EpsilonGreedy wraps an Agent to select a uniformly random action
// with probability epsilon, delegating to the wrapped agent's own
// selection otherwise. Random picks are committed through ForceAct so
// the wrapped agent's cursor stays in sync; value updates still happen
// through the wrapped agent's ObserveReward.
type EpsilonGreedy struct {
	Agent
	epsilon float64
	rand    *rand.Rand
}

var _ Agent = &EpsilonGreedy{}

func NewEpsilonGreedy(agent Agent, epsilon float64, seed uint64) *EpsilonGreedy {
	if agent == nil {
		panic("epsilon-greedy: nil wrapped agent")
	}
	return &EpsilonGreedy{
		Agent:   agent,
		epsilon: epsilon,
		rand:    rand.New(rand.NewSource(seed)),
	}
}

func (e *EpsilonGreedy) Act(observation *State, actions []*Action) *Action {
	if e.rand.Float64() < e.epsilon {
		return e.ForceAct(observation, actions[e.rand.Intn(len(actions))])
	}
	return e.Agent.Act(observation, actions)
}

// Softmax wraps an Agent to select actions with Boltzmann weights
// exp(value/temperature) over the wrapped agent's value estimates.
// Higher temperatures flatten the distribution towards uniform.
type Softmax struct {
	Agent
	temperature float64
	src         rand.Source
}

var _ Agent = &Softmax{}

func NewSoftmax(agent Agent, temperature float64, seed uint64) *Softmax {
	if agent == nil {
		panic("softmax: nil wrapped agent")
	}
	if temperature <= 0 {
		panic("softmax: temperature must be positive")
	}
	return &Softmax{
		Agent:       agent,
		temperature: temperature,
		src:         rand.NewSource(seed),
	}
}

func (s *Softmax) Act(observation *State, actions []*Action) *Action {
	sum := 0.0
	weights := make([]float64, len(actions))
	for i, a := range actions {
		w := math.Exp(s.GetValue(observation, a) / s.temperature)
		weights[i] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	i, ok := sampleuv.NewWeighted(weights, s.src).Take()
	if !ok {
		return s.Agent.Act(observation, actions)
	}
	return s.ForceAct(observation, actions[i])
}
