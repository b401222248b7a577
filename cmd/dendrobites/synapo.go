package main

import (
	"flag"
	"fmt"
	"github.com/mtholder/dendrobites/synapo"
	"github.com/vertgenlab/gonomics/exception"
	"os"
)

func synapoUsage(synapoFlags *flag.FlagSet) {
	fmt.Print(
		"synapo - find candidate synapomorphy columns for a set of taxa\n" +
			"\tPrints the columns where the listed ingroup taxa and the remaining taxa\n" +
			"\tdisplay disjoint state sets. Gap and missing cells are ignored.\n\n" +
			"Usage:\n" +
			"  dendrobites synapo [options] -char-mat aln.fasta taxon1 taxon2 ...\n\n" +
			"Options:\n")
	synapoFlags.PrintDefaults()
}

func runSynapo(args []string) {
	var err error
	synapoFlags := flag.NewFlagSet("synapo", flag.ExitOnError)

	charFile := synapoFlags.String("char-mat", "", "Filepath of the character data.")
	dataType := synapoFlags.String("data-type", "dna", "Data type of the matrix (dna, rna, protein, standard).")
	schema := synapoFlags.String("schema", "fasta", "Schema of the character data (fasta or phylip).")

	err = synapoFlags.Parse(args)
	exception.PanicOnErr(err)
	synapoFlags.Usage = func() { synapoUsage(synapoFlags) }

	if *charFile == "" || synapoFlags.NArg() == 0 {
		synapoFlags.Usage()
		errExit("\nERROR: must have an input for -char-mat and at least one ingroup taxon label")
	}

	err = synapo.Files(*charFile, *dataType, *schema, synapoFlags.Args(), os.Stdout)
	if err != nil {
		errExit(fmt.Sprintf("ERROR: %v", err))
	}
}
