package types_test

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/mem-rl/memory-rl-test/grid"
	"github.com/mem-rl/memory-rl-test/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corridor() *grid.GridWorld {
	return grid.NewGridWorld(3, 1, [2]int{0, 0}, [2]int{0, 2})
}

func TestRunEpisodeDrivesUntilTerminal(t *testing.T) {
	env := corridor()
	learner := types.NewTabularQLearner(0.5, 0.9, 1)
	e := types.NewExperiment("corridor", env, types.NewEpsilonGreedy(learner, 0.5, 2))

	trace := e.RunEpisode(500)
	require.Greater(t, trace.Len(), 0)
	assert.True(t, env.EndOfEpisode())

	last, ok := trace.Last()
	require.True(t, ok)
	assert.Equal(t, 1.0, last.Reward)
}

func TestRunEpisodeHonorsHorizon(t *testing.T) {
	env := grid.NewGridWorld(50, 1, [2]int{0, 0}, [2]int{0, 49})
	learner := types.NewTabularQLearner(0.5, 0.9, 1)
	e := types.NewExperiment("long-corridor", env, types.NewEpsilonGreedy(learner, 1.0, 2))

	trace := e.RunEpisode(5)
	assert.Equal(t, 5, trace.Len())
}

func TestTraceReturnSumsRewards(t *testing.T) {
	trace := types.NewTrace()
	obs := types.NewState(map[string]interface{}{"col": 0})
	trace.Append(obs, types.NewAction("right", nil), -1)
	trace.Append(obs, types.NewAction("right", nil), 1)
	assert.Equal(t, 0.0, trace.Return())
	assert.Equal(t, 2, trace.Len())

	step, ok := trace.Get(0)
	require.True(t, ok)
	assert.Equal(t, -1.0, step.Reward)
	_, ok = trace.Get(2)
	assert.False(t, ok)
}

func TestAnalyzers(t *testing.T) {
	env := corridor()
	learner := types.NewTabularQLearner(0.5, 0.9, 1)
	e := types.NewExperiment("corridor", env, types.NewEpsilonGreedy(learner, 0.5, 2))

	traces := make([]*types.Trace, 5)
	for i := range traces {
		traces[i] = e.RunEpisode(50)
	}

	returns := types.ReturnAnalyzer()(0, "corridor", traces).([]float64)
	require.Len(t, returns, 5)
	for i, trace := range traces {
		assert.Equal(t, trace.Return(), returns[i])
	}

	coverage := types.CoverageAnalyzer()(0, "corridor", traces).([]int)
	require.Len(t, coverage, 5)
	// cumulative counts never decrease, and the corridor has 3 cells
	for i := 1; i < len(coverage); i++ {
		assert.GreaterOrEqual(t, coverage[i], coverage[i-1])
	}
	assert.LessOrEqual(t, coverage[4], 3)
}

func TestReturnRecorderAppendsPerRun(t *testing.T) {
	dir := t.TempDir()
	recorder := types.ReturnRecorder(dir)

	seen := 0
	spy := func(run int, names []string, ds []types.DataSet) { seen++ }
	combined := types.MultiComparator(recorder, spy)

	ds := []types.DataSet{[]float64{-1, 0.5}}
	combined(0, []string{"corridor"}, ds)
	combined(1, []string{"corridor"}, ds)
	require.Equal(t, 2, seen)

	bs, err := os.ReadFile(path.Join(dir, "corridor_returns.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(bs), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "-1.00")
	assert.Contains(t, lines[0], "0.50")
}

// The gating-wrapped corridor is learnable: with the internal reward
// matching the step cost, gating is strictly dominated and the learned
// greedy policy walks straight to the goal in two steps.
func TestCorridorWithGatingMemoryConverges(t *testing.T) {
	env := types.NewGatingMemory(corridor(), 1, -1)
	learner := types.NewTabularQLearner(0.5, 0.9, 3)
	training := types.NewExperiment("train", env, types.NewEpsilonGreedy(learner, 0.3, 4))
	for i := 0; i < 2000; i++ {
		training.RunEpisode(30)
	}

	// greedy evaluation on the same learned values
	evaluation := types.NewExperiment("eval", env, learner)
	for i := 0; i < 20; i++ {
		trace := evaluation.RunEpisode(30)
		require.Equal(t, 2, trace.Len())
		assert.Equal(t, 0.0, trace.Return()) // -1 then +1

		for j := 0; j < trace.Len(); j++ {
			step, _ := trace.Get(j)
			assert.Equal(t, "right", step.Action.Name)
		}
	}
}
