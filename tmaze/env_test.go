package tmaze

import (
	"strings"
	"testing"

	"github.com/mem-rl/memory-rl-test/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func up() *types.Action    { return types.NewAction("up", nil) }
func left() *types.Action  { return types.NewAction("left", nil) }
func right() *types.Action { return types.NewAction("right", nil) }

func TestHintVisibleOnlyAtHintPosition(t *testing.T) {
	m := NewSimpleTMaze(3, 1, 1, 1)

	assert.Equal(t, 0, m.GetObservation().Attr("symbol"))
	m.React(up())
	assert.Equal(t, 1, m.GetObservation().Attr("symbol"))
	m.React(up())
	assert.Equal(t, 0, m.GetObservation().Attr("symbol"))
}

func TestStateExposesGoalSide(t *testing.T) {
	m := NewSimpleTMaze(3, 0, -1, 1)
	assert.Equal(t, -1, m.GetState().Attr("goal_x"))
	assert.False(t, m.GetObservation().Has("goal_x"))
}

func TestCorridorThenJunctionActions(t *testing.T) {
	m := NewSimpleTMaze(2, 0, 1, 1)

	actions := m.GetActions()
	require.Len(t, actions, 1)
	assert.Equal(t, "up", actions[0].Name)

	m.React(up())
	m.React(up())
	actions = m.GetActions()
	require.Len(t, actions, 2)
	assert.True(t, types.ContainsAction(actions, left()))
	assert.True(t, types.ContainsAction(actions, right()))
}

func TestJunctionRewards(t *testing.T) {
	m := NewSimpleTMaze(1, 0, 1, 1)
	assert.Equal(t, -1.0, m.React(up()))
	assert.Equal(t, 10.0, m.React(right()))
	assert.True(t, m.EndOfEpisode())

	m.StartNewEpisode()
	m.React(up())
	assert.Equal(t, -10.0, m.React(left()))
	assert.True(t, m.EndOfEpisode())
}

func TestGoalSideRandomizedPerEpisode(t *testing.T) {
	m := NewSimpleTMaze(1, 0, 0, 5)
	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		m.StartNewEpisode()
		seen[m.GetState().Attr("goal_x").(int)] = true
	}
	assert.True(t, seen[-1])
	assert.True(t, seen[1])
}

func TestIllegalActionPanics(t *testing.T) {
	m := NewSimpleTMaze(2, 0, 1, 1)
	assert.Panics(t, func() { m.React(left()) })
}

func TestRejectsHintOutsideCorridor(t *testing.T) {
	assert.Panics(t, func() { NewSimpleTMaze(2, 2, 1, 1) })
}

func TestVisualize(t *testing.T) {
	m := NewSimpleTMaze(2, 1, 1, 1)
	lines := strings.Split(m.Visualize(), "\n")
	require.Len(t, lines, 3)
	// goal right of the junction, decoy left, hint above the agent
	assert.Equal(t, "#_$", lines[0])
	assert.Equal(t, " ! ", lines[1])
	assert.Equal(t, " * ", lines[2])
}
