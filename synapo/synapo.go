// Package synapo scans an aligned character matrix for columns where an
// ingroup and the remaining taxa display disjoint state sets. Such
// columns are candidate clean synapomorphies for the ingroup.
package synapo

import (
	"fmt"
	"github.com/mtholder/dendrobites/charmat"
	"github.com/vertgenlab/gonomics/exception"
	"golang.org/x/exp/slices"
	"io"
	"strings"
)

// Column is one candidate synapomorphy: the zero-based column index and
// the sorted state sets shown by the ingroup and outgroup. Gap and
// missing cells are ignored.
type Column struct {
	Index     int
	InStates  []string
	OutStates []string
}

func (c Column) String() string {
	return fmt.Sprintf("Column %d: in states = {%s}. out states = {%s}.",
		c.Index, strings.Join(c.InStates, ", "), strings.Join(c.OutStates, ", "))
}

// Files reads a character matrix and prints one line per candidate
// synapomorphy column for the given ingroup to out.
func Files(charFile, dataTypeTag, schemaTag string, ingroupLabels []string, out io.Writer) error {
	dt, err := charmat.ParseDataType(dataTypeTag)
	if err != nil {
		return err
	}
	schema, err := charmat.ParseSchema(schemaTag)
	if err != nil {
		return err
	}
	m, err := charmat.Read(charFile, schema, dt)
	if err != nil {
		return err
	}
	cols, err := Find(m, ingroupLabels)
	if err != nil {
		return err
	}
	for _, c := range cols {
		_, err = fmt.Fprintln(out, c)
		exception.PanicOnErr(err)
	}
	return nil
}

// Find returns the columns for which the taxa in ingroupLabels and the
// remaining taxa have non-empty, disjoint state sets. Labels must be
// unique, present in the matrix, and a proper subset of its taxa.
func Find(m *charmat.Matrix, ingroupLabels []string) ([]Column, error) {
	ingroup := make(map[int]bool)
	for _, l := range ingroupLabels {
		idx := m.Find(l)
		if idx == -1 {
			return nil, fmt.Errorf("could not find the taxon label \"%s\"", l)
		}
		if ingroup[idx] {
			return nil, fmt.Errorf("taxon label \"%s\" was repeated", l)
		}
		ingroup[idx] = true
	}
	if len(ingroup) == m.NumTaxa() {
		return nil, fmt.Errorf("listing all tips is nonsensical")
	}

	var ans []Column
	for i := 0; i < m.NumCols(); i++ {
		col := m.Column(i)
		inStates := make(map[byte]bool)
		outStates := make(map[byte]bool)
		disjoint := true
		for row := range col {
			if charmat.IsGap(col[row]) {
				continue
			}
			if ingroup[row] {
				if outStates[col[row]] {
					disjoint = false
					break
				}
				inStates[col[row]] = true
			} else {
				if inStates[col[row]] {
					disjoint = false
					break
				}
				outStates[col[row]] = true
			}
		}
		if disjoint && len(inStates) > 0 && len(outStates) > 0 {
			ans = append(ans, Column{Index: i, InStates: stateList(inStates), OutStates: stateList(outStates)})
		}
	}
	return ans, nil
}

func stateList(states map[byte]bool) []string {
	ans := make([]string, 0, len(states))
	for s := range states {
		ans = append(ans, string(s))
	}
	slices.Sort(ans)
	return ans
}
