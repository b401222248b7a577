package charmat

import (
	"strings"
	"testing"
)

func TestReadFasta(t *testing.T) {
	m, err := Read("testdata/small.fasta", Fasta, Dna)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumTaxa() != 3 || m.NumCols() != 5 {
		t.Error("problem with fasta dimensions", m.NumTaxa(), m.NumCols())
	}
	if m.Names[0] != "A" || m.Names[1] != "B" || m.Names[2] != "C" {
		t.Error("problem with fasta record order", m.Names)
	}
	if m.Seqs[0] != "AACGT" {
		t.Error("problem with fasta sequence", m.Seqs[0])
	}
	if m.Find("C") != 2 || m.Find("missing") != -1 {
		t.Error("problem with Find")
	}
}

func TestReadFastaMultiLine(t *testing.T) {
	m, err := parseFasta("test", []string{">A", "AAC", "GT", ">B", "AACGA"})
	if err != nil {
		t.Fatal(err)
	}
	if m.Seqs[0] != "AACGT" {
		t.Error("problem with multi-line fasta sequence", m.Seqs[0])
	}
}

func TestReadPhylip(t *testing.T) {
	m, err := Read("testdata/small.phy", Phylip, Dna)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumTaxa() != 2 || m.NumCols() != 4 {
		t.Error("problem with phylip dimensions", m.NumTaxa(), m.NumCols())
	}
	if m.Names[0] != "one" || m.Seqs[1] != "ACGA" {
		t.Error("problem with phylip content", m.Names, m.Seqs)
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := parseFasta("test", []string{"ACGT", ">A"}); err == nil {
		t.Error("problem with detecting data before the first header")
	}
	if _, err := Read("testdata/dup.fasta", Fasta, Dna); err == nil {
		t.Error("problem with detecting a duplicate label")
	}
	if _, err := Read("testdata/ragged.fasta", Fasta, Dna); err == nil {
		t.Error("problem with detecting an unaligned matrix")
	}
	if _, err := Read("testdata/small.fasta", Fasta, Standard); err == nil {
		t.Error("problem with detecting an alphabet violation")
	}
}

func TestDataTypeValidation(t *testing.T) {
	if err := checkAlphabet("ACGT-?", Dna); err != nil {
		t.Error("problem with valid dna being rejected", err)
	}
	if err := checkAlphabet("ACGU", Dna); err == nil {
		t.Error("problem with U accepted as dna")
	}
	if err := checkAlphabet("ACGU", Rna); err != nil {
		t.Error("problem with valid rna being rejected", err)
	}
	if err := checkAlphabet("MKVLW*", Protein); err != nil {
		t.Error("problem with valid protein being rejected", err)
	}
	if err := checkAlphabet("0123-?", Standard); err != nil {
		t.Error("problem with valid standard data being rejected", err)
	}
	if err := checkAlphabet("01A", Standard); err == nil {
		t.Error("problem with letter accepted as standard data")
	}
}

func TestParseDataType(t *testing.T) {
	d, err := ParseDataType("Protein")
	if err != nil || d != Protein {
		t.Error("problem with data type lookup", d, err)
	}
	if d, _ = ParseDataType("nucleotide"); d != Dna {
		t.Error("problem with nucleotide alias", d)
	}
	if _, err = ParseDataType("codon"); err == nil {
		t.Error("problem with unknown data type accepted")
	}
}

func TestColumns(t *testing.T) {
	m := &Matrix{Names: []string{"a", "b", "c"}, Seqs: []string{"AACG-", "AACTA", "AAC-A"}}
	if string(m.Column(0)) != "AAA" || string(m.Column(3)) != "GT-" {
		t.Error("problem with Column", string(m.Column(0)), string(m.Column(3)))
	}
	if !IsInvariantColumn(m.Column(1)) {
		t.Error("problem with invariant column not detected")
	}
	if IsInvariantColumn(m.Column(3)) {
		t.Error("problem with variant column marked invariant")
	}
	if IsInvariantColumn(m.Column(4)) {
		t.Error("problem with gapped column marked invariant")
	}
	if CountGaps(m.Column(4)) != 1 {
		t.Error("problem with CountGaps", CountGaps(m.Column(4)))
	}
}

func TestKeepColumns(t *testing.T) {
	m := &Matrix{Names: []string{"a", "b"}, Seqs: []string{"ACGT", "TGCA"}}
	ans := m.KeepColumns([]int{0, 2, 3})
	if ans.Seqs[0] != "AGT" || ans.Seqs[1] != "TCA" {
		t.Error("problem with KeepColumns", ans.Seqs)
	}
	if m.Seqs[0] != "ACGT" {
		t.Error("problem with KeepColumns modifying its input")
	}
}

func TestWriteTo(t *testing.T) {
	m := &Matrix{Names: []string{"a", "b"}, Seqs: []string{"ACGT", "TGCA"}}
	var s strings.Builder
	WriteTo(&s, m, Fasta)
	if s.String() != ">a\nACGT\n>b\nTGCA\n" {
		t.Error("problem with fasta output", s.String())
	}
	s.Reset()
	WriteTo(&s, m, Phylip)
	if s.String() != "2 4\na  ACGT\nb  TGCA\n" {
		t.Error("problem with phylip output", s.String())
	}
}
