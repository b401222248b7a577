package main

import (
	"flag"
	"fmt"
	"github.com/mtholder/dendrobites/match"
	"log"
	"os"
)

func usage() {
	fmt.Print(
		"matchTipLabels - check that the taxa in a character matrix match the tips of a tree\n\n" +
			"Prints a success message when the label sets are identical. Otherwise the\n" +
			"labels found in only one input are written to standard error and the exit\n" +
			"status is non-zero.\n\n" +
			"Usage:\n" +
			"  matchTipLabels [options] --char aln.fasta --tree tree.nwk\n\n" +
			"Options:\n")
	flag.PrintDefaults()
}

func main() {
	charFile := flag.String("char", "", "Filepath of the character data.")
	treeFile := flag.String("tree", "", "Filepath of the newick tree.")
	dataType := flag.String("data-type", "dna", "Data type of the matrix (dna, rna, protein, standard).")
	charSchema := flag.String("char-schema", "fasta", "Schema of the character data (fasta or phylip).")
	flag.Usage = usage
	flag.Parse()

	if *charFile == "" || *treeFile == "" {
		usage()
		log.Fatalln("ERROR: must have inputs for --char and --tree")
	}

	err := match.Files(*charFile, *treeFile, *dataType, *charSchema)
	switch err.(type) {
	case nil:
		fmt.Println("Tips match")
	case match.MismatchError:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	default:
		log.Fatalf("ERROR: %v\n", err)
	}
}
