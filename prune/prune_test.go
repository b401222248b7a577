package prune

import (
	"github.com/mtholder/dendrobites/charmat"
	"github.com/mtholder/dendrobites/newick"
	"os"
	"path/filepath"
	"testing"
)

func readMatTree(t *testing.T) (*charmat.Matrix, *newick.Node) {
	t.Helper()
	m, err := charmat.Read("testdata/aln.fasta", charmat.Fasta, charmat.Protein)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := newick.ReadFile("testdata/tree.nwk")
	if err != nil {
		t.Fatal(err)
	}
	return m, tree
}

func TestToTaxa(t *testing.T) {
	m, tree := readMatTree(t)
	// retain-list order must not leak into the output
	pm, pt, err := ToTaxa(m, tree, []string{"C", "A", "B"})
	if err != nil {
		t.Fatal(err)
	}
	if pm.NumTaxa() != 3 || pm.Names[0] != "A" || pm.Names[1] != "B" || pm.Names[2] != "C" {
		t.Error("problem with pruned matrix rows", pm.Names)
	}
	if pm.Seqs[2] != "MKVP" {
		t.Error("problem with pruned matrix sequences", pm.Seqs)
	}
	names := pt.LeafNames()
	if len(names) != 3 || names[0] != "A" || names[1] != "B" || names[2] != "C" {
		t.Error("problem with pruned tree leaves", names)
	}
}

func TestToTaxaIdempotent(t *testing.T) {
	m, tree := readMatTree(t)
	labels := []string{"A", "B", "C"}
	pm, pt, err := ToTaxa(m, tree, labels)
	if err != nil {
		t.Fatal(err)
	}
	pm2, pt2, err := ToTaxa(pm, pt, labels)
	if err != nil {
		t.Fatal(err)
	}
	if pt2.String() != pt.String() {
		t.Error("problem with tree pruning idempotence", pt.String(), pt2.String())
	}
	for i := range pm.Names {
		if pm2.Names[i] != pm.Names[i] || pm2.Seqs[i] != pm.Seqs[i] {
			t.Error("problem with matrix pruning idempotence")
		}
	}
}

func TestToTaxaErrors(t *testing.T) {
	m, tree := readMatTree(t)
	if _, _, err := ToTaxa(m, tree, []string{"A", "Z"}); err == nil {
		t.Error("problem with unknown label accepted")
	}
	m, tree = readMatTree(t)
	if _, _, err := ToTaxa(m, tree, []string{"A", "A"}); err == nil {
		t.Error("problem with repeated label accepted")
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	copyFile(t, "testdata/aln.fasta", filepath.Join(dir, "aln.fasta"))
	copyFile(t, "testdata/tree.nwk", filepath.Join(dir, "tree.nwk"))

	err := Files(filepath.Join(dir, "aln.fasta"), filepath.Join(dir, "tree.nwk"),
		"protein", "fasta", []string{"A", "B", "C"})
	if err != nil {
		t.Fatal(err)
	}

	gotTree, err := os.ReadFile(filepath.Join(dir, "pruned-tree.nwk"))
	if err != nil {
		t.Fatal(err)
	}
	wantTree, err := os.ReadFile("testdata/expected-pruned-tree.nwk")
	if err != nil {
		t.Fatal(err)
	}
	if string(gotTree) != string(wantTree) {
		t.Error("problem with pruned tree output", string(gotTree))
	}

	gotMat, err := os.ReadFile(filepath.Join(dir, "pruned-aln.fasta"))
	if err != nil {
		t.Fatal(err)
	}
	wantMat, err := os.ReadFile("testdata/expected-pruned-aln.fasta")
	if err != nil {
		t.Fatal(err)
	}
	if string(gotMat) != string(wantMat) {
		t.Error("problem with pruned matrix output", string(gotMat))
	}

	// outputs now exist, so a rerun must refuse to overwrite
	err = Files(filepath.Join(dir, "aln.fasta"), filepath.Join(dir, "tree.nwk"),
		"protein", "fasta", []string{"A", "B", "C"})
	if err == nil {
		t.Error("problem with overwriting existing output")
	}
}

func TestOutPath(t *testing.T) {
	if OutPath("dir/aln.fasta", "pruned-") != filepath.Join("dir", "pruned-aln.fasta") {
		t.Error("problem with OutPath", OutPath("dir/aln.fasta", "pruned-"))
	}
	if OutPath("aln.fasta", "pruned-") != "pruned-aln.fasta" {
		t.Error("problem with OutPath on a bare filename")
	}
}

func copyFile(t *testing.T, from, to string) {
	t.Helper()
	data, err := os.ReadFile(from)
	if err != nil {
		t.Fatal(err)
	}
	if err = os.WriteFile(to, data, 0644); err != nil {
		t.Fatal(err)
	}
}
