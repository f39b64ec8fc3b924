package tmaze

import (
	"fmt"
	"strings"

	"github.com/mem-rl/memory-rl-test/types"
	"golang.org/x/exp/rand"
)

// SimpleTMaze is a corridor of the given length ending in a junction.
// A hint at HintPos reveals which side of the junction holds the goal;
// everywhere else the hint symbol reads 0. Which side is rewarded is
// drawn per episode from the environment's own generator unless pinned
// at construction, and is visible in the state but not in the
// observation. Solving the maze therefore requires remembering the
// hint, which is what the memory combinators provide.
type SimpleTMaze struct {
	Length  int
	HintPos int

	x         int
	y         int
	initGoalX int
	goalX     int
	rand      *rand.Rand
}

var _ types.Environment = &SimpleTMaze{}
var _ types.Visualizer = &SimpleTMaze{}

// NewSimpleTMaze builds a T-maze. goalX pins the rewarded side to -1
// or 1; 0 randomizes it per episode using the seeded generator.
func NewSimpleTMaze(length, hintPos, goalX int, seed uint64) *SimpleTMaze {
	if hintPos < 0 || hintPos >= length {
		panic("tmaze: hint position must be within the corridor")
	}
	m := &SimpleTMaze{
		Length:    length,
		HintPos:   hintPos,
		initGoalX: goalX,
		rand:      rand.New(rand.NewSource(seed)),
	}
	m.StartNewEpisode()
	return m
}

// GetState exposes the goal side on top of the observation.
func (m *SimpleTMaze) GetState() *types.State {
	attrs := m.GetObservation().AsMap()
	attrs["goal_x"] = m.goalX
	return types.NewState(attrs)
}

func (m *SimpleTMaze) GetObservation() *types.State {
	symbol := 0
	if m.y == m.HintPos {
		symbol = m.goalX
	}
	return types.NewState(map[string]interface{}{"x": m.x, "y": m.y, "symbol": symbol})
}

func (m *SimpleTMaze) GetActions() []*types.Action {
	actions := make([]*types.Action, 0, 2)
	if m.x == 0 {
		if m.y < m.Length {
			actions = append(actions, types.NewAction("up", nil))
		} else if m.y == m.Length {
			actions = append(actions, types.NewAction("left", nil))
			actions = append(actions, types.NewAction("right", nil))
		}
	}
	return actions
}

func (m *SimpleTMaze) EndOfEpisode() bool {
	return len(m.GetActions()) == 0
}

func (m *SimpleTMaze) Reset() {
	m.StartNewEpisode()
}

func (m *SimpleTMaze) StartNewEpisode() {
	m.x = 0
	m.y = 0
	if m.initGoalX == 0 {
		m.goalX = []int{-1, 1}[m.rand.Intn(2)]
	} else {
		m.goalX = m.initGoalX
	}
}

func (m *SimpleTMaze) React(action *types.Action) float64 {
	if !types.ContainsAction(m.GetActions(), action) {
		panic(fmt.Sprintf("tmaze: illegal action %s at (%d, %d)", action, m.x, m.y))
	}
	switch action.Name {
	case "up":
		m.y++
	case "right":
		m.x++
	case "left":
		m.x--
	}
	if m.y == m.Length {
		switch m.x {
		case m.goalX:
			return 10
		case -m.goalX:
			return -10
		}
	}
	return -1
}

func (m *SimpleTMaze) Visualize() string {
	lines := make([][]byte, m.Length+1)
	for i := range lines {
		lines[i] = []byte{' ', '_', ' '}
	}
	lines[0][1+m.goalX] = '$'
	lines[0][1-m.goalX] = '#'
	lines[m.Length-m.y][1] = '*'
	lines[m.Length-m.HintPos][1] = '!'
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(line)
	}
	return b.String()
}
