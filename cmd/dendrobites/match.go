package main

import (
	"flag"
	"fmt"
	"github.com/mtholder/dendrobites/match"
	"github.com/vertgenlab/gonomics/exception"
	"os"
)

func matchUsage(matchFlags *flag.FlagSet) {
	fmt.Print(
		"match - check that the taxa in a character matrix match the tips of a tree\n" +
			"\tPrints a success message when the label sets are identical; otherwise the\n" +
			"\tsymmetric difference goes to standard error and the exit status is non-zero.\n\n" +
			"Usage:\n" +
			"  dendrobites match [options] -char aln.fasta -tree tree.nwk\n\n" +
			"Options:\n")
	matchFlags.PrintDefaults()
}

func runMatch(args []string) {
	var err error
	matchFlags := flag.NewFlagSet("match", flag.ExitOnError)

	charFile := matchFlags.String("char", "", "Filepath of the character data.")
	treeFile := matchFlags.String("tree", "", "Filepath of the newick tree.")
	dataType := matchFlags.String("data-type", "dna", "Data type of the matrix (dna, rna, protein, standard).")
	charSchema := matchFlags.String("char-schema", "fasta", "Schema of the character data (fasta or phylip).")

	err = matchFlags.Parse(args)
	exception.PanicOnErr(err)
	matchFlags.Usage = func() { matchUsage(matchFlags) }

	if *charFile == "" || *treeFile == "" {
		matchFlags.Usage()
		errExit("\nERROR: must have inputs for -char and -tree")
	}

	err = match.Files(*charFile, *treeFile, *dataType, *charSchema)
	switch err.(type) {
	case nil:
		fmt.Println("Tips match")
	case match.MismatchError:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	default:
		errExit(fmt.Sprintf("ERROR: %v", err))
	}
}
