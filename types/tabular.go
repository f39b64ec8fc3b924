package types

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/rand"
)

// TabularQLearner learns a sparse value table keyed by observation and
// action hashes, updated with the standard temporal-difference rule
//
//	value = (1-alpha)*value + alpha*(reward + gamma*bestNext)
//
// Entries are created lazily, only by being written: looking up an
// unseen pair returns 0 without growing the table.
type TabularQLearner struct {
	values map[string]map[string]float64
	// hash -> record lookups so stored keys can be returned as values
	observations map[string]*State
	actions      map[string]*Action

	alpha float64
	gamma float64
	rand  *rand.Rand

	prevObservation *State
	prevAction      *Action
}

var _ Agent = &TabularQLearner{}

// NewTabularQLearner creates a learner with the given learning rate
// alpha and discount rate gamma. The seed drives the uniform choice
// among actions at observations with no stored values.
func NewTabularQLearner(alpha, gamma float64, seed uint64) *TabularQLearner {
	return &TabularQLearner{
		values:       make(map[string]map[string]float64),
		observations: make(map[string]*State),
		actions:      make(map[string]*Action),
		alpha:        alpha,
		gamma:        gamma,
		rand:         rand.New(rand.NewSource(seed)),
	}
}

func (t *TabularQLearner) StartNewEpisode() {
	t.prevObservation = nil
	t.prevAction = nil
}

func (t *TabularQLearner) GetValue(observation *State, action *Action) float64 {
	if observation == nil || action == nil {
		return 0
	}
	stored, ok := t.values[observation.Hash()]
	if !ok {
		return 0
	}
	return stored[action.Hash()]
}

// StoredActions returns the actions stored at the observation sorted
// by hash, so that first-maximum tie breaking in BestAction is
// deterministic for a fixed table.
func (t *TabularQLearner) StoredActions(observation *State) []*Action {
	if observation == nil {
		return nil
	}
	stored, ok := t.values[observation.Hash()]
	if !ok {
		return nil
	}
	hashes := make([]string, 0, len(stored))
	for aHash := range stored {
		hashes = append(hashes, aHash)
	}
	sort.Strings(hashes)
	actions := make([]*Action, len(hashes))
	for i, aHash := range hashes {
		actions[i] = t.actions[aHash]
	}
	return actions
}

func (t *TabularQLearner) BestAction(observation *State) *Action {
	var best *Action
	bestVal := 0.0
	for _, a := range t.StoredActions(observation) {
		val := t.GetValue(observation, a)
		if best == nil || val > bestVal {
			best = a
			bestVal = val
		}
	}
	return best
}

func (t *TabularQLearner) BestValue(observation *State) float64 {
	return t.GetValue(observation, t.BestAction(observation))
}

// ObserveReward assigns credit for the reward to the cursor pair. With
// no cursor (before the first action of an episode) there is nothing
// to assign credit to and the call is a no-op.
func (t *TabularQLearner) ObserveReward(observation *State, reward float64) {
	if t.prevObservation == nil || t.prevAction == nil {
		return
	}
	prevValue := t.GetValue(t.prevObservation, t.prevAction)
	target := reward + t.gamma*t.BestValue(observation)
	t.setValue(t.prevObservation, t.prevAction, (1-t.alpha)*prevValue+t.alpha*target)
}

func (t *TabularQLearner) setValue(observation *State, action *Action, value float64) {
	oHash := observation.Hash()
	stored, ok := t.values[oHash]
	if !ok {
		stored = make(map[string]float64)
		t.values[oHash] = stored
		t.observations[oHash] = observation
	}
	aHash := action.Hash()
	if _, ok := stored[aHash]; !ok {
		t.actions[aHash] = action
	}
	stored[aHash] = value
}

func (t *TabularQLearner) Act(observation *State, actions []*Action) *Action {
	best := t.BestAction(observation)
	if best == nil {
		best = actions[t.rand.Intn(len(actions))]
	}
	return t.ForceAct(observation, best)
}

func (t *TabularQLearner) ForceAct(observation *State, action *Action) *Action {
	t.prevObservation = observation
	if observation == nil {
		t.prevAction = nil
	} else {
		t.prevAction = action
	}
	return action
}

// WriteValueFunction dumps the table sorted by observation hash, then
// by action hash within each observation.
func (t *TabularQLearner) WriteValueFunction(w io.Writer) {
	oHashes := make([]string, 0, len(t.values))
	for oHash := range t.values {
		oHashes = append(oHashes, oHash)
	}
	sort.Strings(oHashes)
	for _, oHash := range oHashes {
		fmt.Fprintf(w, "%s\n", t.observations[oHash].String())
		aHashes := make([]string, 0, len(t.values[oHash]))
		for aHash := range t.values[oHash] {
			aHashes = append(aHashes, aHash)
		}
		sort.Strings(aHashes)
		for _, aHash := range aHashes {
			fmt.Fprintf(w, "    %s: %.3f\n", aHash, t.values[oHash][aHash])
		}
	}
}
