package main

import (
	"flag"
	"fmt"
	"github.com/mtholder/dendrobites/cull"
	"github.com/vertgenlab/gonomics/exception"
)

func cullUsage(cullFlags *flag.FlagSet) {
	fmt.Print(
		"cull - remove constant, gapless columns from a character matrix\n" +
			"\tBy default each invariant column is kept with probability -p-inv from a\n" +
			"\tseedable generator; variant columns always survive. With -paired the\n" +
			"\tdeterministic paired-invariants model estimator is used instead.\n\n" +
			"Usage:\n" +
			"  dendrobites cull [options] -p-inv 0.3 aln.fasta > culled.fasta\n\n" +
			"Options:\n")
	cullFlags.PrintDefaults()
}

func runCull(args []string) {
	var err error
	cullFlags := flag.NewFlagSet("cull", flag.ExitOnError)

	pInv := cullFlags.Float64("p-inv", -1, "Retention probability for invariant columns (proportion of invariant sites with -paired).")
	dataType := cullFlags.String("data-type", "dna", "Data type of the matrix (dna, rna, protein, standard).")
	schema := cullFlags.String("schema", "fasta", "Schema of the character data (fasta or phylip).")
	seed := cullFlags.Int64("seed", 1, "Seed for the random number generator.")
	paired := cullFlags.Bool("paired", false, "Cull with the paired-invariants model estimator.")
	output := cullFlags.String("o", "stdout", "Output file for the culled matrix.")

	err = cullFlags.Parse(args)
	exception.PanicOnErr(err)
	cullFlags.Usage = func() { cullUsage(cullFlags) }

	if cullFlags.NArg() != 1 {
		cullFlags.Usage()
		errExit("\nERROR: must input exactly one character data file")
	}
	if *pInv < 0 || *pInv > 1 {
		cullFlags.Usage()
		errExit("\nERROR: -p-inv must be between 0 and 1")
	}

	err = cull.Files(cullFlags.Arg(0), *output, *dataType, *schema, *pInv, *seed, *paired)
	if err != nil {
		errExit(fmt.Sprintf("ERROR: %v", err))
	}
}
