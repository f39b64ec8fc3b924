package types

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/mem-rl/memory-rl-test/util"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Generic dataset produced by analyzing the traces of an experiment
type DataSet interface{}

// Analyzer compresses the traces of a run into a DataSet
// run, experiment name, traces
type Analyzer func(int, string, []*Trace) DataSet

// Comparator differentiates between datasets of different experiments
// run, experiment names, datasets
type Comparator func(int, []string, []DataSet)

func NoopComparator() Comparator {
	return func(int, []string, []DataSet) {}
}

// MultiComparator fans a dataset out to several comparators.
func MultiComparator(comparators ...Comparator) Comparator {
	return func(run int, names []string, ds []DataSet) {
		for _, c := range comparators {
			c(run, names, ds)
		}
	}
}

// ReturnAnalyzer collects the per-episode returns.
func ReturnAnalyzer() Analyzer {
	return func(run int, name string, traces []*Trace) DataSet {
		returns := make([]float64, len(traces))
		for i, trace := range traces {
			returns[i] = trace.Return()
		}
		return returns
	}
}

// ReturnPlotter plots the per-episode returns of each experiment on a
// common axis, one image per run.
func ReturnPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Episode returns"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Return"
		for i := 0; i < len(names); i++ {
			returns := ds[i].([]float64)
			points := make(plotter.XYs, len(returns))
			for j, v := range returns {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			fmt.Printf("Final return: %.2f for experiment: %s\n", returns[len(returns)-1], names[i])
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_returns.png"))
	}
}

// ReturnRecorder appends the raw per-episode returns of each
// experiment to a text file, one line per run.
func ReturnRecorder(recordPath string) Comparator {
	if _, err := os.Stat(recordPath); err != nil {
		os.MkdirAll(recordPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		for i, name := range names {
			returns := ds[i].([]float64)
			line := ""
			for _, r := range returns {
				line = fmt.Sprintf("%s%7.2f, ", line, r)
			}
			util.AppendToFile(path.Join(recordPath, name+"_returns.txt"), line)
		}
	}
}

// CoverageAnalyzer counts the unique observations seen after each
// episode.
func CoverageAnalyzer() Analyzer {
	return func(run int, name string, traces []*Trace) DataSet {
		uniqueObservations := make(map[string]bool)
		numUnique := make([]int, 0, len(traces))
		for _, trace := range traces {
			for j := 0; j < trace.Len(); j++ {
				step, _ := trace.Get(j)
				oHash := step.Observation.Hash()
				if _, ok := uniqueObservations[oHash]; !ok {
					uniqueObservations[oHash] = true
				}
			}
			numUnique = append(numUnique, len(uniqueObservations))
		}
		return numUnique
	}
}

// CoveragePlotter plots the observation coverage curves of each
// experiment, one image per run.
func CoveragePlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Observation coverage"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Observations covered"
		for i := 0; i < len(names); i++ {
			uniqueObservations := ds[i].([]int)
			points := make(plotter.XYs, len(uniqueObservations))
			for j, v := range uniqueObservations {
				points[j] = plotter.XY{
					X: float64(j),
					Y: float64(v),
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			fmt.Printf("Number of unique observations: %d for experiment: %s\n", uniqueObservations[len(uniqueObservations)-1], names[i])
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_coverage.png"))
	}
}
