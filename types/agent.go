package types

import "io"

// Agent is the contract for anything that selects actions and learns
// from rewards. Combinators wrap an Agent and implement the same
// interface, forwarding whatever they do not override.
//
// Every agent owns a single interaction cursor: the (observation,
// action) pair of its most recent decision point. Act and ForceAct
// advance the cursor; ObserveReward assigns credit to it.
type Agent interface {
	// GetValue returns the learned value of an observation/action
	// pair. A pair that was never updated has value exactly 0.
	GetValue(observation *State, action *Action) float64
	// StoredActions returns the actions with stored values at an
	// observation, in a deterministic order.
	StoredActions(observation *State) []*Action
	// BestAction returns the stored action maximizing GetValue, ties
	// broken by the order of StoredActions, or nil if nothing is
	// stored at the observation.
	BestAction(observation *State) *Action
	// BestValue is GetValue(observation, BestAction(observation)),
	// which is 0 when there is no best action.
	BestValue(observation *State) float64
	// ObserveReward updates the value estimates using the cursor and
	// the reward just received.
	ObserveReward(observation *State, reward float64)
	// Act chooses the best known action, or uniformly at random among
	// actions when nothing is stored, and records it as the cursor.
	// The driver never calls Act with an empty action list.
	Act(observation *State, actions []*Action) *Action
	// ForceAct records an externally chosen action as the cursor
	// without any selection logic.
	ForceAct(observation *State, action *Action) *Action
	// StartNewEpisode clears the cursor.
	StartNewEpisode()
	// WriteValueFunction dumps the learned values in a stable order.
	// Diagnostic only.
	WriteValueFunction(w io.Writer)
}
