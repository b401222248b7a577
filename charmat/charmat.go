// Package charmat holds an aligned character matrix as an ordered set of
// taxon label / sequence pairs, with readers and writers for fasta and
// relaxed phylip.
package charmat

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"strconv"
	"strings"
)

// Schema names a character-matrix file format.
type Schema byte

const (
	Fasta Schema = iota
	Phylip
)

var schemaMap = map[string]Schema{
	"fasta":  Fasta,
	"phylip": Phylip,
}

func (s Schema) String() string {
	switch s {
	case Fasta:
		return "fasta"
	case Phylip:
		return "phylip"
	}
	return "unknown"
}

// ParseSchema looks up a schema tag, case-insensitive.
func ParseSchema(tag string) (Schema, error) {
	s, ok := schemaMap[strings.ToLower(tag)]
	if !ok {
		return 0, fmt.Errorf("the schema \"%s\" is not recognized. Expecting \"fasta\" or \"phylip\"", tag)
	}
	return s, nil
}

// FormatError reports a matrix file that cannot be parsed under the
// declared schema and data type.
type FormatError struct {
	File string
	Msg  string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("format error in %s: %s", e.File, e.Msg)
}

// Matrix is an ordered, aligned character matrix. Names and Seqs are
// parallel; order follows the input file. Labels are unique.
type Matrix struct {
	Names []string
	Seqs  []string
}

// NumTaxa returns the number of rows.
func (m *Matrix) NumTaxa() int {
	return len(m.Names)
}

// NumCols returns the alignment length, or zero for an empty matrix.
func (m *Matrix) NumCols() int {
	if len(m.Seqs) == 0 {
		return 0
	}
	return len(m.Seqs[0])
}

// Find returns the row index of the taxon with the given label, or -1.
func (m *Matrix) Find(label string) int {
	for i := range m.Names {
		if m.Names[i] == label {
			return i
		}
	}
	return -1
}

// Column returns the cells of column i in row order.
func (m *Matrix) Column(i int) []byte {
	col := make([]byte, len(m.Seqs))
	for j := range m.Seqs {
		col[j] = m.Seqs[j][i]
	}
	return col
}

// IsInvariantColumn reports whether every cell of col holds the same
// symbol with no gap or missing cells.
func IsInvariantColumn(col []byte) bool {
	for i := range col {
		if IsGap(col[i]) {
			return false
		}
		if col[i] != col[0] {
			return false
		}
	}
	return len(col) > 0
}

// CountGaps returns the number of gap or missing cells in col.
func CountGaps(col []byte) int {
	var n int
	for i := range col {
		if IsGap(col[i]) {
			n++
		}
	}
	return n
}

// KeepColumns returns a new matrix holding only the columns whose indices
// appear in keep, in ascending index order. Row order is unchanged.
func (m *Matrix) KeepColumns(keep []int) *Matrix {
	ans := &Matrix{Names: make([]string, len(m.Names)), Seqs: make([]string, len(m.Seqs))}
	copy(ans.Names, m.Names)
	var s strings.Builder
	for i := range m.Seqs {
		s.Reset()
		for _, idx := range keep {
			s.WriteByte(m.Seqs[i][idx])
		}
		ans.Seqs[i] = s.String()
	}
	return ans
}

// Read parses the file as the given schema, validates every sequence
// against the data type, and checks that labels are unique and all rows
// have equal length.
func Read(filename string, schema Schema, dt DataType) (*Matrix, error) {
	lines := fileio.Read(filename)
	var m *Matrix
	var err error
	switch schema {
	case Fasta:
		m, err = parseFasta(filename, lines)
	case Phylip:
		m, err = parsePhylip(filename, lines)
	default:
		return nil, FormatError{File: filename, Msg: "unsupported schema"}
	}
	if err != nil {
		return nil, err
	}

	if len(m.Names) == 0 {
		return nil, FormatError{File: filename, Msg: "no sequences found"}
	}
	seen := make(map[string]bool)
	for i := range m.Names {
		if seen[m.Names[i]] {
			return nil, FormatError{File: filename, Msg: fmt.Sprintf("duplicate taxon label \"%s\"", m.Names[i])}
		}
		seen[m.Names[i]] = true
		if len(m.Seqs[i]) != len(m.Seqs[0]) {
			return nil, FormatError{File: filename, Msg: fmt.Sprintf("sequence for \"%s\" has length %d, expected %d (matrix must be aligned)", m.Names[i], len(m.Seqs[i]), len(m.Seqs[0]))}
		}
		if err = checkAlphabet(m.Seqs[i], dt); err != nil {
			return nil, FormatError{File: filename, Msg: fmt.Sprintf("sequence for \"%s\": %s", m.Names[i], err)}
		}
	}
	return m, nil
}

func parseFasta(filename string, lines []string) (*Matrix, error) {
	m := new(Matrix)
	var seq strings.Builder
	var haveName bool
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if haveName {
				m.Seqs = append(m.Seqs, seq.String())
				seq.Reset()
			}
			name := strings.TrimSpace(line[1:])
			if name == "" {
				return nil, FormatError{File: filename, Msg: "empty fasta record name"}
			}
			m.Names = append(m.Names, name)
			haveName = true
			continue
		}
		if !haveName {
			return nil, FormatError{File: filename, Msg: "sequence data before first fasta header"}
		}
		seq.WriteString(strings.ToUpper(line))
	}
	if haveName {
		m.Seqs = append(m.Seqs, seq.String())
	}
	return m, nil
}

func parsePhylip(filename string, lines []string) (*Matrix, error) {
	var header []string
	var i int
	for i = 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			header = strings.Fields(lines[i])
			i++
			break
		}
	}
	if len(header) != 2 {
		return nil, FormatError{File: filename, Msg: "phylip header must be \"<ntax> <nchar>\""}
	}
	nTax, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, FormatError{File: filename, Msg: "phylip header must be \"<ntax> <nchar>\""}
	}
	nChar, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, FormatError{File: filename, Msg: "phylip header must be \"<ntax> <nchar>\""}
	}

	m := new(Matrix)
	for ; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		fields := strings.Fields(lines[i])
		if len(fields) < 2 {
			return nil, FormatError{File: filename, Msg: fmt.Sprintf("phylip row \"%s\" lacks a sequence", lines[i])}
		}
		m.Names = append(m.Names, fields[0])
		m.Seqs = append(m.Seqs, strings.ToUpper(strings.Join(fields[1:], "")))
	}
	if len(m.Names) != nTax {
		return nil, FormatError{File: filename, Msg: fmt.Sprintf("phylip header declares %d taxa, found %d", nTax, len(m.Names))}
	}
	for j := range m.Seqs {
		if len(m.Seqs[j]) != nChar {
			return nil, FormatError{File: filename, Msg: fmt.Sprintf("phylip header declares %d characters, row \"%s\" has %d", nChar, m.Names[j], len(m.Seqs[j]))}
		}
	}
	return m, nil
}

// WriteFile writes the matrix to filename in the given schema.
func WriteFile(filename string, m *Matrix, schema Schema) {
	out := fileio.EasyCreate(filename)
	WriteTo(out, m, schema)
	err := out.Close()
	exception.PanicOnErr(err)
}

// WriteTo writes the matrix to an open stream in the given schema.
func WriteTo(out io.Writer, m *Matrix, schema Schema) {
	var err error
	switch schema {
	case Phylip:
		_, err = fmt.Fprintf(out, "%d %d\n", m.NumTaxa(), m.NumCols())
		exception.PanicOnErr(err)
		for i := range m.Names {
			_, err = fmt.Fprintf(out, "%s  %s\n", m.Names[i], m.Seqs[i])
			exception.PanicOnErr(err)
		}
	default:
		for i := range m.Names {
			_, err = fmt.Fprintf(out, ">%s\n%s\n", m.Names[i], m.Seqs[i])
			exception.PanicOnErr(err)
		}
	}
}
