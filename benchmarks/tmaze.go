package benchmarks

import (
	"github.com/mem-rl/memory-rl-test/tmaze"
	"github.com/mem-rl/memory-rl-test/types"
	"github.com/spf13/cobra"
)

// TMazeComparison compares a memoryless learner against learners with
// gating and long-term memory on the T-maze. The goal side is hidden
// from the observation except at the hint cell, so only the
// memory-wrapped environments can be solved above chance.
func TMazeComparison(episodes, horizon, runs int, saveDir string, length, hintPos int, alpha, gamma, epsilon, internalReward float64) {
	c := types.NewComparison(types.ReturnAnalyzer(), types.MultiComparator(types.ReturnPlotter(saveDir), types.ReturnRecorder(saveDir)))

	c.AddExperiment(types.NewExperiment(
		"Memoryless",
		tmaze.NewSimpleTMaze(length, hintPos, 0, seed),
		types.NewEpsilonGreedy(types.NewTabularQLearner(alpha, gamma, seed+1), epsilon, seed+2),
	))
	c.AddExperiment(types.NewExperiment(
		"GatingMemory",
		types.NewGatingMemory(tmaze.NewSimpleTMaze(length, hintPos, 0, seed+3), 1, internalReward),
		types.NewEpsilonGreedy(types.NewTabularQLearner(alpha, gamma, seed+4), epsilon, seed+5),
	))
	c.AddExperiment(types.NewExperiment(
		"LongTermMemory",
		types.NewFixedLongTermMemory(tmaze.NewSimpleTMaze(length, hintPos, 0, seed+6), 1, 1, internalReward),
		types.NewEpsilonGreedy(types.NewTabularQLearner(alpha, gamma, seed+7), epsilon, seed+8),
	))

	c.Run(runs, episodes, horizon)
	recordValueFunctions(saveDir, c)
}

func TMazeCommand() *cobra.Command {
	var length int
	var hintPos int
	var alpha float64
	var gamma float64
	var epsilon float64
	var internalReward float64

	cmd := &cobra.Command{
		Use: "tmaze",
		Run: func(cmd *cobra.Command, args []string) {
			TMazeComparison(episodes, horizon, runs, saveDir, length, hintPos, alpha, gamma, epsilon, internalReward)
		},
	}
	cmd.PersistentFlags().IntVar(&length, "length", 4, "Length of the corridor before the junction")
	cmd.PersistentFlags().IntVar(&hintPos, "hint", 0, "Position of the hint along the corridor")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", 0.5, "Learning rate")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", 0.9, "Discount rate")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", 0.1, "Exploration rate")
	cmd.PersistentFlags().Float64Var(&internalReward, "internal-reward", -0.05, "Reward for internal memory actions")
	return cmd
}
