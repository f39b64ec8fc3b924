package benchmarks

import "github.com/spf13/cobra"

var (
	episodes int
	horizon  int
	saveDir  string
	seed     uint64
	runs     int
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use: "memory-rl-test",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 2000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 100, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 2024, "Base seed for all random sources")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	// adding the subcommands here
	rootCommand.AddCommand(GridCommand())
	rootCommand.AddCommand(GridMemoryCommand())
	rootCommand.AddCommand(TMazeCommand())
	return rootCommand
}
