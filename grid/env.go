package grid

import (
	"fmt"
	"strings"

	"github.com/mem-rl/memory-rl-test/types"
)

// GridWorld is a simple obstacle-free grid navigation environment.
// The agent starts at Start and the episode ends when it reaches
// Goal. Moving into the goal yields +1, every other move -1. Origin
// is the top left; the first coordinate is the row.
type GridWorld struct {
	Width  int
	Height int
	Start  [2]int
	Goal   [2]int

	row int
	col int
}

var _ types.Environment = &GridWorld{}
var _ types.Visualizer = &GridWorld{}

func NewGridWorld(width, height int, start, goal [2]int) *GridWorld {
	return &GridWorld{
		Width:  width,
		Height: height,
		Start:  start,
		Goal:   goal,
		row:    start[0],
		col:    start[1],
	}
}

func (g *GridWorld) GetState() *types.State {
	return types.NewState(map[string]interface{}{"row": g.row, "col": g.col})
}

// The grid is fully observable
func (g *GridWorld) GetObservation() *types.State {
	return g.GetState()
}

func (g *GridWorld) GetActions() []*types.Action {
	if g.atGoal() {
		return []*types.Action{}
	}
	actions := make([]*types.Action, 0, 4)
	if g.row > 0 {
		actions = append(actions, types.NewAction("up", nil))
	}
	if g.row < g.Height-1 {
		actions = append(actions, types.NewAction("down", nil))
	}
	if g.col > 0 {
		actions = append(actions, types.NewAction("left", nil))
	}
	if g.col < g.Width-1 {
		actions = append(actions, types.NewAction("right", nil))
	}
	return actions
}

func (g *GridWorld) EndOfEpisode() bool {
	return g.atGoal()
}

func (g *GridWorld) Reset() {
	g.StartNewEpisode()
}

func (g *GridWorld) StartNewEpisode() {
	g.row = g.Start[0]
	g.col = g.Start[1]
}

func (g *GridWorld) React(action *types.Action) float64 {
	if !types.ContainsAction(g.GetActions(), action) {
		panic(fmt.Sprintf("gridworld: illegal action %s at (%d, %d)", action, g.row, g.col))
	}
	switch action.Name {
	case "up":
		g.row = max(0, g.row-1)
	case "down":
		g.row = min(g.Height-1, g.row+1)
	case "left":
		g.col = max(0, g.col-1)
	case "right":
		g.col = min(g.Width-1, g.col+1)
	}
	if g.atGoal() {
		return 1
	}
	return -1
}

func (g *GridWorld) Visualize() string {
	var b strings.Builder
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			switch {
			case i == g.row && j == g.col:
				b.WriteByte('*')
			case i == g.Goal[0] && j == g.Goal[1]:
				b.WriteByte('$')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *GridWorld) atGoal() bool {
	return g.row == g.Goal[0] && g.col == g.Goal[1]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
