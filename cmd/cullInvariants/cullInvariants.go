package main

import (
	"flag"
	"fmt"
	"github.com/mtholder/dendrobites/cull"
	"log"
)

func usage() {
	fmt.Print(
		"cullInvariants - remove constant, gapless columns from a character matrix\n\n" +
			"By default each invariant column is kept with probability --p-inv using a\n" +
			"seedable generator, and variant columns always survive. With --paired the\n" +
			"deterministic paired-invariants estimator is used instead and --p-inv is\n" +
			"the modeled proportion of invariant sites.\n\n" +
			"Usage:\n" +
			"  cullInvariants [options] --p-inv=0.3 aln.fasta > culled.fasta\n\n" +
			"Options:\n")
	flag.PrintDefaults()
}

func main() {
	pInv := flag.Float64("p-inv", -1, "Retention probability for invariant columns (proportion of invariant sites with --paired).")
	dataType := flag.String("data-type", "dna", "Data type of the matrix (dna, rna, protein, standard).")
	schema := flag.String("schema", "fasta", "Schema of the character data (fasta or phylip).")
	seed := flag.Int64("seed", 1, "Seed for the random number generator.")
	paired := flag.Bool("paired", false, "Cull with the paired-invariants model estimator.")
	output := flag.String("o", "stdout", "Output file for the culled matrix.")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		log.Fatalln("ERROR: must input exactly one character data file")
	}
	if *pInv < 0 || *pInv > 1 {
		usage()
		log.Fatalln("ERROR: --p-inv must be between 0 and 1")
	}

	err := cull.Files(flag.Arg(0), *output, *dataType, *schema, *pInv, *seed, *paired)
	if err != nil {
		log.Fatalf("ERROR: %v\n", err)
	}
}
