package main

import (
	"flag"
	"fmt"
	"github.com/mtholder/dendrobites/prune"
	"github.com/vertgenlab/gonomics/exception"
)

func pruneUsage(pruneFlags *flag.FlagSet) {
	fmt.Print(
		"prune - prune a character matrix and tree down to a set of taxa\n" +
			"\tOutput rows and leaves keep the order of the input files. Results are\n" +
			"\twritten beside the inputs with a \"pruned-\" prefix; existing files are\n" +
			"\tnever overwritten.\n\n" +
			"Usage:\n" +
			"  dendrobites prune [options] -char aln.fasta -tree tree.nwk taxon1 taxon2 ...\n\n" +
			"Options:\n")
	pruneFlags.PrintDefaults()
}

func runPrune(args []string) {
	var err error
	pruneFlags := flag.NewFlagSet("prune", flag.ExitOnError)

	charFile := pruneFlags.String("char", "", "Filepath of the character data.")
	treeFile := pruneFlags.String("tree", "", "Filepath of the newick tree.")
	dataType := pruneFlags.String("data-type", "dna", "Data type of the matrix (dna, rna, protein, standard).")
	charSchema := pruneFlags.String("char-schema", "fasta", "Schema of the character data (fasta or phylip).")

	err = pruneFlags.Parse(args)
	exception.PanicOnErr(err)
	pruneFlags.Usage = func() { pruneUsage(pruneFlags) }

	if *charFile == "" || *treeFile == "" || pruneFlags.NArg() == 0 {
		pruneFlags.Usage()
		errExit("\nERROR: must have inputs for -char and -tree, and at least one taxon label")
	}

	err = prune.Files(*charFile, *treeFile, *dataType, *charSchema, pruneFlags.Args())
	if err != nil {
		errExit(fmt.Sprintf("ERROR: %v", err))
	}
}
