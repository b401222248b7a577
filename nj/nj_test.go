package nj

import (
	"gonum.org/v1/gonum/mat"
	"testing"
)

func TestReadDistances(t *testing.T) {
	dm, err := ReadDistances("testdata/dist.ssv")
	if err != nil {
		t.Fatal(err)
	}
	if len(dm.Names) != 3 || dm.Names[0] != "1" || dm.Names[2] != "3" {
		t.Error("problem with distance file taxa", dm.Names)
	}
	if dm.D.At(0, 1) != 2 || dm.D.At(1, 0) != 2 || dm.D.At(0, 2) != 4 {
		t.Error("problem with distance values")
	}
	if dm.D.At(1, 1) != 0 {
		t.Error("problem with nonzero diagonal")
	}
}

func TestReadDistancesErrors(t *testing.T) {
	if _, err := ReadDistances("testdata/short.ssv"); err == nil {
		t.Error("problem with malformed line accepted")
	}
	if _, err := ReadDistances("testdata/missing.ssv"); err == nil {
		t.Error("problem with incomplete matrix accepted")
	}
}

func TestPairwise(t *testing.T) {
	dm, err := ReadDistances("testdata/dist.ssv")
	if err != nil {
		t.Fatal(err)
	}
	p := dm.Pairwise()
	if len(p) != 3 || p[0] != 2 || p[1] != 4 || p[2] != 4 {
		t.Error("problem with pairwise distances", p)
	}
}

func TestTreeThreeTaxa(t *testing.T) {
	dm, err := ReadDistances("testdata/dist.ssv")
	if err != nil {
		t.Fatal(err)
	}
	tree := Tree(dm)
	if tree.String() != "(3:1.5,(1:1,2:1):1.5);" {
		t.Error("problem with three-taxon tree", tree.String())
	}
}

func TestTreeAdditiveFourTaxa(t *testing.T) {
	// distances from ((A:1,B:2):1,(C:3,D:4)), which NJ must recover
	d := []float64{
		0, 3, 5, 6,
		3, 0, 6, 7,
		5, 6, 0, 7,
		6, 7, 7, 0,
	}
	dm := &DistMat{Names: []string{"A", "B", "C", "D"}, D: mat.NewDense(4, 4, d)}
	tree := Tree(dm)
	if tree.String() != "((A:1,B:2):0.5,(C:3,D:4):0.5);" {
		t.Error("problem with four-taxon tree", tree.String())
	}
}

func TestFromFasta(t *testing.T) {
	dm, err := FromFasta("testdata/aln.fasta")
	if err != nil {
		t.Fatal(err)
	}
	if len(dm.Names) != 3 || dm.Names[0] != "s1" {
		t.Error("problem with alignment taxa", dm.Names)
	}
	if dm.D.At(0, 1) != 0.25 || dm.D.At(0, 2) != 0.5 || dm.D.At(1, 2) != 0.25 {
		t.Error("problem with p-distances", mat.Formatted(dm.D))
	}
}

func TestFromFastaSkipsUndefinedSites(t *testing.T) {
	dm, err := FromFasta("testdata/gappy.fasta")
	if err != nil {
		t.Fatal(err)
	}
	// the gapped and N sites drop out, leaving 1 difference over 3 sites
	if dm.D.At(0, 1) != 1.0/3.0 {
		t.Error("problem with undefined-site handling", dm.D.At(0, 1))
	}
}
