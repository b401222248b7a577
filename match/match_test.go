package match

import (
	"github.com/mtholder/dendrobites/charmat"
	"github.com/mtholder/dendrobites/newick"
	"testing"
)

func TestTipLabelsMatch(t *testing.T) {
	m := &charmat.Matrix{Names: []string{"A", "B", "C"}, Seqs: []string{"ACGT", "ACGA", "ACTA"}}
	tree, err := newick.Parse("((C:1,A:1):1,B:2);")
	if err != nil {
		t.Fatal(err)
	}
	if err = TipLabels(m, tree); err != nil {
		t.Error("problem with matching labels reported as mismatch", err)
	}
}

func TestTipLabelsMismatch(t *testing.T) {
	m := &charmat.Matrix{Names: []string{"A", "B", "D", "E"}, Seqs: []string{"A", "C", "G", "T"}}
	tree, err := newick.Parse("((A:1,B:1):1,C:2);")
	if err != nil {
		t.Fatal(err)
	}
	err = TipLabels(m, tree)
	me, ok := err.(MismatchError)
	if !ok {
		t.Fatal("problem with mismatch not reported", err)
	}
	if len(me.TreeMissing) != 2 || me.TreeMissing[0] != "D" || me.TreeMissing[1] != "E" {
		t.Error("problem with matrix-only labels", me.TreeMissing)
	}
	if len(me.MatrixMissing) != 1 || me.MatrixMissing[0] != "C" {
		t.Error("problem with tree-only labels", me.MatrixMissing)
	}
	if me.Error() == "" {
		t.Error("problem with empty diagnostic")
	}
}

func TestFiles(t *testing.T) {
	err := Files("testdata/aln.fasta", "testdata/tree.nwk", "dna", "fasta")
	if err != nil {
		t.Error("problem with matched files", err)
	}
	err = Files("testdata/aln.fasta", "testdata/badtree.nwk", "dna", "fasta")
	if _, ok := err.(MismatchError); !ok {
		t.Error("problem with mislabeled tree not reported", err)
	}
}
