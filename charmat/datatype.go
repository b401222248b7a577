package charmat

import (
	"fmt"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"strings"
)

// DataType declares the character alphabet of a matrix.
type DataType byte

const (
	Dna DataType = iota
	Rna
	Protein
	Standard
)

// dataTypeMap maps the command-line data-type tag to a DataType.
var dataTypeMap = map[string]DataType{
	"dna":        Dna,
	"nucleotide": Dna,
	"rna":        Rna,
	"protein":    Protein,
	"standard":   Standard,
}

// alphabetMap maps each DataType to its set of legal state symbols.
// Gap and missing symbols are legal for every type and handled separately.
var alphabetMap = map[DataType]string{
	Dna:      "ACGTRYSWKMBDHVN",
	Rna:      "ACGURYSWKMBDHVN",
	Protein:  "ACDEFGHIKLMNPQRSTVWYBZX*",
	Standard: "0123456789",
}

const gapSymbol byte = '-'
const missingSymbol byte = '?'

func (d DataType) String() string {
	switch d {
	case Dna:
		return "dna"
	case Rna:
		return "rna"
	case Protein:
		return "protein"
	case Standard:
		return "standard"
	}
	return "unknown"
}

// ParseDataType looks up a data-type tag, case-insensitive.
func ParseDataType(tag string) (DataType, error) {
	d, ok := dataTypeMap[strings.ToLower(tag)]
	if !ok {
		valid := maps.Keys(dataTypeMap)
		slices.Sort(valid)
		return 0, fmt.Errorf("the data type \"%s\" is not recognized. Expecting one of \"%s\"", tag, strings.Join(valid, "\", \""))
	}
	return d, nil
}

// IsGap reports whether c is the gap or missing-data symbol.
func IsGap(c byte) bool {
	return c == gapSymbol || c == missingSymbol
}

// checkAlphabet verifies that every symbol in seq is legal for d.
// Sequences are upper-cased before this is called.
func checkAlphabet(seq string, d DataType) error {
	alphabet := alphabetMap[d]
	for i := 0; i < len(seq); i++ {
		if IsGap(seq[i]) {
			continue
		}
		if strings.IndexByte(alphabet, seq[i]) == -1 {
			return fmt.Errorf("symbol '%c' at position %d is not valid for %s data", seq[i], i+1, d)
		}
	}
	return nil
}
