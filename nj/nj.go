// Package nj builds neighbor-joining trees from pairwise distances. The
// distances come either from a precomputed distance file or from
// uncorrected p-distances over a nucleotide alignment.
package nj

import (
	"fmt"
	"github.com/mtholder/dendrobites/newick"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
	"strconv"
	"strings"
)

// DistMat is a labeled symmetric distance matrix with a zero diagonal.
type DistMat struct {
	Names []string
	D     *mat.Dense
}

// Pairwise returns the strict upper-triangle distances in row-major
// order.
func (dm *DistMat) Pairwise() []float64 {
	var ans []float64
	n := len(dm.Names)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ans = append(ans, dm.D.At(i, j))
		}
	}
	return ans
}

// ReadDistances parses a space-separated distance file. Each line holds
// five fields: an ignored leading field, two integer taxon ids, an
// ignored count, and the distance. Every unordered pair must appear at
// least once; taxon names in the result are the ids in ascending order.
func ReadDistances(filename string) (*DistMat, error) {
	lines := fileio.Read(filename)
	byPair := make(map[int]map[int]float64)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("distance line \"%s\" does not have 5 fields", line)
		}
		first, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("bad taxon id \"%s\" in distance file", fields[1])
		}
		second, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("bad taxon id \"%s\" in distance file", fields[2])
		}
		d, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, fmt.Errorf("bad distance \"%s\" in distance file", fields[4])
		}
		setDist(byPair, first, second, d)
		setDist(byPair, second, first, d)
	}
	if len(byPair) < 2 {
		return nil, fmt.Errorf("distance file holds fewer than two taxa")
	}

	ids := maps.Keys(byPair)
	slices.Sort(ids)
	n := len(ids)
	dm := &DistMat{Names: make([]string, n), D: mat.NewDense(n, n, nil)}
	for i, id := range ids {
		dm.Names[i] = strconv.Itoa(id)
	}
	for i, a := range ids {
		for j, b := range ids {
			if i == j {
				continue
			}
			d, ok := byPair[a][b]
			if !ok {
				return nil, fmt.Errorf("distance file is missing the pair %d %d", a, b)
			}
			dm.D.Set(i, j, d)
		}
	}
	return dm, nil
}

func setDist(byPair map[int]map[int]float64, a, b int, d float64) {
	if byPair[a] == nil {
		byPair[a] = make(map[int]float64)
	}
	byPair[a][b] = d
}

// FromFasta reads a nucleotide fasta alignment and returns the matrix of
// uncorrected p-distances. Sites where either sequence has an undefined
// base (gap or N) are excluded from a pair's comparison.
func FromFasta(filename string) (*DistMat, error) {
	records := fasta.Read(filename)
	if len(records) < 2 {
		return nil, fmt.Errorf("alignment holds fewer than two sequences")
	}
	seen := make(map[string]bool)
	for i := range records {
		if seen[records[i].Name] {
			return nil, fmt.Errorf("duplicate taxon label \"%s\"", records[i].Name)
		}
		seen[records[i].Name] = true
		if len(records[i].Seq) != len(records[0].Seq) {
			return nil, fmt.Errorf("sequence for \"%s\" has length %d, expected %d (alignment required)", records[i].Name, len(records[i].Seq), len(records[0].Seq))
		}
	}

	n := len(records)
	dm := &DistMat{Names: make([]string, n), D: mat.NewDense(n, n, nil)}
	for i := range records {
		dm.Names[i] = records[i].Name
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := pDistance(records[i].Seq, records[j].Seq)
			if err != nil {
				return nil, fmt.Errorf("\"%s\" vs \"%s\": %s", records[i].Name, records[j].Name, err)
			}
			dm.D.Set(i, j, d)
			dm.D.Set(j, i, d)
		}
	}
	return dm, nil
}

func pDistance(a, b []dna.Base) (float64, error) {
	var diff, comparable int
	for i := range a {
		if !dna.DefineBase(a[i]) || !dna.DefineBase(b[i]) {
			continue
		}
		comparable++
		if a[i] != b[i] {
			diff++
		}
	}
	if comparable == 0 {
		return 0, fmt.Errorf("no comparable sites")
	}
	return float64(diff) / float64(comparable), nil
}

// Tree agglomerates the distance matrix into an unrooted binary tree by
// the Saitou-Nei neighbor-joining criterion, returned rooted at the
// final join. Branch lengths may be negative for non-additive input.
func Tree(dm *DistMat) *newick.Node {
	n := len(dm.Names)
	nodes := make([]*newick.Node, n)
	for i := range nodes {
		nodes[i] = &newick.Node{Name: dm.Names[i]}
	}
	d := mat.DenseCopyOf(dm.D)

	for n > 2 {
		r := make([]float64, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				r[i] += d.At(i, j)
			}
		}

		// pick the pair minimizing the Q criterion
		var bestI, bestJ int = 0, 1
		best := qValue(d, r, n, 0, 1)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if q := qValue(d, r, n, i, j); q < best {
					best = q
					bestI, bestJ = i, j
				}
			}
		}

		dij := d.At(bestI, bestJ)
		li := dij/2 + (r[bestI]-r[bestJ])/(2*float64(n-2))
		lj := dij - li
		nodes[bestI].Length, nodes[bestI].HasLength = li, true
		nodes[bestJ].Length, nodes[bestJ].HasLength = lj, true
		joined := &newick.Node{Children: []*newick.Node{nodes[bestI], nodes[bestJ]}}

		// collapse the pair into the new node and shrink the matrix
		next := mat.NewDense(n-1, n-1, nil)
		var kept []int
		for k := 0; k < n; k++ {
			if k != bestI && k != bestJ {
				kept = append(kept, k)
			}
		}
		for a, ka := range kept {
			for b, kb := range kept {
				next.Set(a, b, d.At(ka, kb))
			}
		}
		for a, ka := range kept {
			du := (d.At(bestI, ka) + d.At(bestJ, ka) - dij) / 2
			next.Set(a, n-2, du)
			next.Set(n-2, a, du)
		}

		nextNodes := make([]*newick.Node, 0, n-1)
		for _, k := range kept {
			nextNodes = append(nextNodes, nodes[k])
		}
		nextNodes = append(nextNodes, joined)
		nodes = nextNodes
		d = next
		n--
	}

	half := d.At(0, 1) / 2
	nodes[0].Length, nodes[0].HasLength = half, true
	nodes[1].Length, nodes[1].HasLength = half, true
	return &newick.Node{Children: []*newick.Node{nodes[0], nodes[1]}}
}

func qValue(d *mat.Dense, r []float64, n, i, j int) float64 {
	return float64(n-2)*d.At(i, j) - r[i] - r[j]
}
