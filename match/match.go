// Package match compares the taxon labels of a character matrix with the
// leaf labels of a tree.
package match

import (
	"fmt"
	"github.com/mtholder/dendrobites/charmat"
	"github.com/mtholder/dendrobites/newick"
	"golang.org/x/exp/slices"
	"strings"
)

// MismatchError carries the symmetric difference between the two label
// sets. Both slices are sorted.
type MismatchError struct {
	TreeMissing   []string // in the matrix but not the tree
	MatrixMissing []string // in the tree but not the matrix
}

func (e MismatchError) Error() string {
	var s strings.Builder
	if len(e.TreeMissing) > 0 {
		fmt.Fprintf(&s, "some of the taxa in the matrix are not in the tree. Tree is missing \"%s\"\n", strings.Join(e.TreeMissing, "\", \""))
	}
	if len(e.MatrixMissing) > 0 {
		fmt.Fprintf(&s, "some of the taxa in the tree are not in the data matrix. Matrix is missing \"%s\"\n", strings.Join(e.MatrixMissing, "\", \""))
	}
	return strings.TrimRight(s.String(), "\n")
}

// Files reads a character matrix and a tree and compares their label
// sets. Returns nil on a match, a MismatchError when the sets differ,
// and the parse error otherwise.
func Files(charFile, treeFile, dataTypeTag, schemaTag string) error {
	dt, err := charmat.ParseDataType(dataTypeTag)
	if err != nil {
		return err
	}
	schema, err := charmat.ParseSchema(schemaTag)
	if err != nil {
		return err
	}
	mat, err := charmat.Read(charFile, schema, dt)
	if err != nil {
		return err
	}
	tree, err := newick.ReadFile(treeFile)
	if err != nil {
		return err
	}
	return TipLabels(mat, tree)
}

// TipLabels returns nil when the matrix taxon set equals the tree leaf
// set, and a MismatchError listing the symmetric difference otherwise.
func TipLabels(mat *charmat.Matrix, tree *newick.Node) error {
	inTree := make(map[string]bool)
	for _, name := range tree.LeafNames() {
		inTree[name] = true
	}
	inMat := make(map[string]bool)
	for _, name := range mat.Names {
		inMat[name] = true
	}

	var e MismatchError
	for name := range inMat {
		if !inTree[name] {
			e.TreeMissing = append(e.TreeMissing, name)
		}
	}
	for name := range inTree {
		if !inMat[name] {
			e.MatrixMissing = append(e.MatrixMissing, name)
		}
	}
	if len(e.TreeMissing) == 0 && len(e.MatrixMissing) == 0 {
		return nil
	}
	slices.Sort(e.TreeMissing)
	slices.Sort(e.MatrixMissing)
	return e
}
