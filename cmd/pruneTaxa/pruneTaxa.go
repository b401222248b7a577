package main

import (
	"flag"
	"fmt"
	"github.com/mtholder/dendrobites/prune"
	"log"
)

func usage() {
	fmt.Print(
		"pruneTaxa - prune a character matrix and tree down to a set of taxa\n\n" +
			"Takes a character data file, a newick tree, and a series of taxon labels.\n" +
			"Writes pruned versions of the matrix and tree to files with a \"pruned-\"\n" +
			"prefix beside the inputs. Output rows and leaves keep the input order.\n\n" +
			"Usage:\n" +
			"  pruneTaxa [options] --char=aln.fasta --tree=tree.nwk taxon1 taxon2 ...\n\n" +
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

	if *charFile == "" || *treeFile == "" || flag.NArg() == 0 {
		usage()
		log.Fatalln("ERROR: must have inputs for --char and --tree, and at least one taxon label")
	}

	err := prune.Files(*charFile, *treeFile, *dataType, *charSchema, flag.Args())
	if err != nil {
		log.Fatalf("ERROR: %v\n", err)
	}
}
