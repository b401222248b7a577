package main

import (
	"flag"
	"fmt"
	"github.com/guptarohit/asciigraph"
	"github.com/mtholder/dendrobites/nj"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"os"
)

func njUsage(njFlags *flag.FlagSet) {
	fmt.Print(
		"nj - build a neighbor-joining tree from pairwise distances\n" +
			"\tDistances come from a space-separated distance file (-i) or are computed\n" +
			"\tas uncorrected p-distances over a nucleotide fasta alignment (-f). The\n" +
			"\ttree is written as newick.\n\n" +
			"Usage:\n" +
			"  dendrobites nj [options] -i distances.ssv > tree.nwk\n" +
			"  dendrobites nj [options] -f aln.fasta > tree.nwk\n\n" +
			"Options:\n")
	njFlags.PrintDefaults()
}

func runNj(args []string) {
	var err error
	njFlags := flag.NewFlagSet("nj", flag.ExitOnError)

	input := njFlags.String("i", "", "Input distance file. Each line is: junk id1 id2 count distance.")
	fastaInput := njFlags.String("f", "", "Input nucleotide fasta alignment.")
	output := njFlags.String("o", "stdout", "Output newick file.")
	summary := njFlags.Bool("summary", false, "Print summary statistics of the pairwise distances to stderr.")
	plotTerm := njFlags.Bool("plot", false, "Plot a histogram of the pairwise distances in the terminal.")
	plotOut := njFlags.String("plotOut", "", "Write a histogram of the pairwise distances to a png file.")

	err = njFlags.Parse(args)
	exception.PanicOnErr(err)
	njFlags.Usage = func() { njUsage(njFlags) }

	if (*input == "") == (*fastaInput == "") {
		njFlags.Usage()
		errExit("\nERROR: must have an input for exactly one of -i and -f")
	}

	var dm *nj.DistMat
	if *input != "" {
		dm, err = nj.ReadDistances(*input)
	} else {
		dm, err = nj.FromFasta(*fastaInput)
	}
	if err != nil {
		errExit(fmt.Sprintf("ERROR: %v", err))
	}

	tree := nj.Tree(dm)
	out := fileio.EasyCreate(*output)
	_, err = fmt.Fprintln(out, tree)
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)

	dists := dm.Pairwise()
	if *summary {
		fmt.Fprintf(os.Stderr, "Taxa:\t%d\n", len(dm.Names))
		fmt.Fprintf(os.Stderr, "Pairs:\t%d\n", len(dists))
		fmt.Fprintf(os.Stderr, "Mean distance:\t%g\n", stat.Mean(dists, nil))
		fmt.Fprintf(os.Stderr, "Min distance:\t%g\n", floats.Min(dists))
		fmt.Fprintf(os.Stderr, "Max distance:\t%g\n", floats.Max(dists))
	}
	if *plotTerm {
		fmt.Println(asciigraph.Plot(binCounts(dists, 20),
			asciigraph.Height(8),
			asciigraph.Precision(0),
			asciigraph.Caption("pairwise distance histogram")))
	}
	if *plotOut != "" {
		plotHistogram(dists, *plotOut)
	}
}

// binCounts buckets the distances into n equal-width bins spanning their
// range, for the terminal plot.
func binCounts(dists []float64, n int) []float64 {
	min, max := floats.Min(dists), floats.Max(dists)
	counts := make([]float64, n)
	if max == min {
		counts[0] = float64(len(dists))
		return counts
	}
	width := (max - min) / float64(n)
	for _, d := range dists {
		bin := int((d - min) / width)
		if bin >= n {
			bin = n - 1
		}
		counts[bin]++
	}
	return counts
}
