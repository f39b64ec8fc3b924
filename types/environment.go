package types

// Environment is the contract between the episode driver and anything
// an agent can interact with, including the memory combinators that
// wrap other environments.
type Environment interface {
	// GetState returns the full state, including information hidden
	// from the agent, or nil at the end of an episode.
	GetState() *State
	// GetObservation returns the agent-visible view of the state, or
	// nil at the end of an episode. Agents must only ever consume
	// observations.
	GetObservation() *State
	// GetActions returns the currently legal actions. An empty list
	// signals a terminal state.
	GetActions() []*Action
	// EndOfEpisode reports whether the episode has ended. Unless an
	// environment has a cheaper test this is len(GetActions()) == 0.
	EndOfEpisode() bool
	// Reset re-initializes the environment entirely, equivalent to
	// reconstructing it. StartNewEpisode only resets per-episode state.
	Reset()
	StartNewEpisode()
	// React applies an action drawn from the most recent GetActions
	// and returns the reward. Implementations panic on an action that
	// was not in that set: a stray action means the agent and the
	// environment have desynchronized.
	React(action *Action) float64
}

// Visualizer is implemented by environments that can render their
// current state as text. The core never consumes it.
type Visualizer interface {
	Visualize() string
}
