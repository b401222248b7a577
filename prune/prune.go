// Package prune restricts a character matrix and tree to a retained
// taxon set.
package prune

import (
	"fmt"
	"github.com/mtholder/dendrobites/charmat"
	"github.com/mtholder/dendrobites/newick"
	"os"
	"path/filepath"
	"strings"
)

// UnknownTaxonError reports a retain label that is absent from the matrix
// or the tree. Treated as a usage error by callers.
type UnknownTaxonError struct {
	Labels []string
	Where  string
}

func (e UnknownTaxonError) Error() string {
	return fmt.Sprintf("taxon label(s) \"%s\" not found in the %s", strings.Join(e.Labels, "\", \""), e.Where)
}

// ToTaxa returns the matrix and tree restricted to the taxa in labels.
// Row and leaf order follow the input data, not the order of labels.
// Every label must be present in both inputs; repeated labels are an
// error. The tree is modified in place.
func ToTaxa(mat *charmat.Matrix, tree *newick.Node, labels []string) (*charmat.Matrix, *newick.Node, error) {
	keep := make(map[string]bool)
	for _, l := range labels {
		if keep[l] {
			return nil, nil, fmt.Errorf("taxon label \"%s\" was repeated", l)
		}
		keep[l] = true
	}

	var missing []string
	for _, l := range labels {
		if mat.Find(l) == -1 {
			missing = append(missing, l)
		}
	}
	if len(missing) > 0 {
		return nil, nil, UnknownTaxonError{Labels: missing, Where: "character matrix"}
	}

	treeLabels := make(map[string]bool)
	for _, name := range tree.LeafNames() {
		treeLabels[name] = true
	}
	for _, l := range labels {
		if !treeLabels[l] {
			missing = append(missing, l)
		}
	}
	if len(missing) > 0 {
		return nil, nil, UnknownTaxonError{Labels: missing, Where: "tree"}
	}

	prunedMat := &charmat.Matrix{}
	for i := range mat.Names {
		if keep[mat.Names[i]] {
			prunedMat.Names = append(prunedMat.Names, mat.Names[i])
			prunedMat.Seqs = append(prunedMat.Seqs, mat.Seqs[i])
		}
	}

	prunedTree := newick.Prune(tree, keep)
	if prunedTree == nil {
		// unreachable once labels are validated, but fail loudly anyway
		return nil, nil, fmt.Errorf("pruning removed every leaf from the tree")
	}
	return prunedMat, prunedTree, nil
}

// Files reads a character matrix and a tree, prunes both down to labels,
// and writes the results beside the inputs with a "pruned-" prefix.
// Existing output files are never overwritten.
func Files(charFile, treeFile, dataTypeTag, schemaTag string, labels []string) error {
	dt, err := charmat.ParseDataType(dataTypeTag)
	if err != nil {
		return err
	}
	schema, err := charmat.ParseSchema(schemaTag)
	if err != nil {
		return err
	}

	outChar := OutPath(charFile, "pruned-")
	outTree := OutPath(treeFile, "pruned-")
	for _, p := range []string{outChar, outTree} {
		if _, statErr := os.Stat(p); statErr == nil {
			return fmt.Errorf("\"%s\" already exists! Move it before running this tool", p)
		}
	}

	mat, err := charmat.Read(charFile, schema, dt)
	if err != nil {
		return err
	}
	tree, err := newick.ReadFile(treeFile)
	if err != nil {
		return err
	}

	prunedMat, prunedTree, err := ToTaxa(mat, tree, labels)
	if err != nil {
		return err
	}
	newick.WriteFile(outTree, prunedTree)
	charmat.WriteFile(outChar, prunedMat, schema)
	return nil
}

// OutPath places prefix in front of the base name of template, keeping
// its directory.
func OutPath(template, prefix string) string {
	return filepath.Join(filepath.Dir(template), prefix+filepath.Base(template))
}
