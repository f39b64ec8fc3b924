package benchmarks

import (
	"path"
	"strings"

	"github.com/mem-rl/memory-rl-test/grid"
	"github.com/mem-rl/memory-rl-test/types"
	"github.com/mem-rl/memory-rl-test/util"
	"github.com/spf13/cobra"
)

// GridComparison compares exploration strategies on the plain
// gridworld.
func GridComparison(episodes, horizon, runs int, saveDir string, width, height int, alpha, gamma, epsilon float64) {
	c := types.NewComparison(types.ReturnAnalyzer(), types.MultiComparator(types.ReturnPlotter(saveDir), types.ReturnRecorder(saveDir)))

	start := [2]int{0, 0}
	goal := [2]int{height - 1, width - 1}

	c.AddExperiment(types.NewExperiment(
		"EpsilonGreedy",
		grid.NewGridWorld(width, height, start, goal),
		types.NewEpsilonGreedy(types.NewTabularQLearner(alpha, gamma, seed), epsilon, seed+1),
	))
	c.AddExperiment(types.NewExperiment(
		"Softmax",
		grid.NewGridWorld(width, height, start, goal),
		types.NewSoftmax(types.NewTabularQLearner(alpha, gamma, seed+2), 1.0, seed+3),
	))

	c.Run(runs, episodes, horizon)
	recordValueFunctions(saveDir, c)
}

// GridMemoryComparison compares learning on the plain gridworld
// against the same gridworld wrapped in a gating memory. The memory
// slots are useless here (the grid is fully observable), so the
// wrapped experiment shows the cost of the enlarged action set.
func GridMemoryComparison(episodes, horizon, runs int, saveDir string, width, height, slots int, alpha, gamma, epsilon, internalReward float64) {
	c := types.NewComparison(types.ReturnAnalyzer(), types.MultiComparator(types.ReturnPlotter(saveDir), types.ReturnRecorder(saveDir)))

	start := [2]int{0, 0}
	goal := [2]int{height - 1, width - 1}

	c.AddExperiment(types.NewExperiment(
		"Plain",
		grid.NewGridWorld(width, height, start, goal),
		types.NewEpsilonGreedy(types.NewTabularQLearner(alpha, gamma, seed), epsilon, seed+1),
	))
	c.AddExperiment(types.NewExperiment(
		"GatingMemory",
		types.NewGatingMemory(grid.NewGridWorld(width, height, start, goal), slots, internalReward),
		types.NewEpsilonGreedy(types.NewTabularQLearner(alpha, gamma, seed+2), epsilon, seed+3),
	))

	c.Run(runs, episodes, horizon)
	recordValueFunctions(saveDir, c)
}

func recordValueFunctions(saveDir string, c *types.Comparison) {
	for _, e := range c.Experiments {
		var b strings.Builder
		e.Agent().WriteValueFunction(&b)
		util.WriteToFile(path.Join(saveDir, "values", e.Name+".txt"), b.String())
	}
}

func GridCommand() *cobra.Command {
	var width int
	var height int
	var alpha float64
	var gamma float64
	var epsilon float64

	cmd := &cobra.Command{
		Use: "grid",
		Run: func(cmd *cobra.Command, args []string) {
			GridComparison(episodes, horizon, runs, saveDir, width, height, alpha, gamma, epsilon)
		},
	}
	cmd.PersistentFlags().IntVar(&width, "width", 5, "Width of the grid")
	cmd.PersistentFlags().IntVar(&height, "height", 5, "Height of the grid")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", 0.5, "Learning rate")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", 0.9, "Discount rate")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", 0.1, "Exploration rate")
	return cmd
}

func GridMemoryCommand() *cobra.Command {
	var width int
	var height int
	var slots int
	var alpha float64
	var gamma float64
	var epsilon float64
	var internalReward float64

	cmd := &cobra.Command{
		Use: "grid-memory",
		Run: func(cmd *cobra.Command, args []string) {
			GridMemoryComparison(episodes, horizon, runs, saveDir, width, height, slots, alpha, gamma, epsilon, internalReward)
		},
	}
	cmd.PersistentFlags().IntVar(&width, "width", 3, "Width of the grid")
	cmd.PersistentFlags().IntVar(&height, "height", 1, "Height of the grid")
	cmd.PersistentFlags().IntVar(&slots, "slots", 1, "Number of gating memory slots")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", 0.5, "Learning rate")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", 0.9, "Discount rate")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", 0.1, "Exploration rate")
	cmd.PersistentFlags().Float64Var(&internalReward, "internal-reward", -1, "Reward for internal memory actions")
	return cmd
}
