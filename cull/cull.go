// Package cull removes invariant columns from an aligned character
// matrix. An invariant column is constant and gapless; any column with a
// gap, missing cell, or more than one state always survives.
package cull

import (
	"github.com/mtholder/dendrobites/charmat"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"math"
	"math/rand"
)

// Invariants keeps each invariant column with probability pKeep, drawn
// independently per column from rng. Variant columns are always kept and
// row order is unchanged. rng is injected so runs are reproducible under
// a fixed seed.
func Invariants(m *charmat.Matrix, pKeep float64, rng *rand.Rand) *charmat.Matrix {
	var keep []int
	for i := 0; i < m.NumCols(); i++ {
		if !charmat.IsInvariantColumn(m.Column(i)) {
			keep = append(keep, i)
			continue
		}
		if rng.Float64() < pKeep {
			keep = append(keep, i)
		}
	}
	return m.KeepColumns(keep)
}

// Files reads a character matrix, culls invariant columns, and writes
// the surviving matrix to output ("stdout" writes to standard output).
// When paired is false each invariant column is kept with probability
// pInv using a generator seeded with seed; when paired is true the
// deterministic paired-invariants estimator is used and pInv is the
// modeled proportion of invariant sites.
func Files(charFile, output, dataTypeTag, schemaTag string, pInv float64, seed int64, paired bool) error {
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

	var ans *charmat.Matrix
	if paired {
		ans = PairedInvariants(m, pInv)
	} else {
		ans = Invariants(m, pInv, rand.New(rand.NewSource(seed)))
	}
	charmat.WriteFile(output, ans, schema)
	return nil
}

// classifyColumns walks the matrix once, returning the invariant column
// indices grouped by their state symbol (each list ascending) and the
// number of gap cells found in the remaining columns.
func classifyColumns(m *charmat.Matrix) (constBySymbol map[byte][]int, gapCells int) {
	constBySymbol = make(map[byte][]int)
	for i := 0; i < m.NumCols(); i++ {
		col := m.Column(i)
		if charmat.IsInvariantColumn(col) {
			constBySymbol[col[0]] = append(constBySymbol[col[0]], i)
		} else {
			gapCells += charmat.CountGaps(col)
		}
	}
	return constBySymbol, gapCells
}

// PairedInvariants culls constant, gapless columns as if the matrix were
// generated under the paired-invariants model of McTavish, Steel, and
// Holder (arXiv:1504.07124) with proportion pInv of invariant sites.
//
// The mean gapless sequence length estimates the equilibrium length; the
// expected number of invariant columns is pInv times that estimate. The
// cull is spread across the constant-column state classes in proportion
// to their sizes so the state frequencies of the surviving constant
// columns are distorted as little as possible. Within a class the
// lowest-index columns are removed, so the result is deterministic.
func PairedInvariants(m *charmat.Matrix, pInv float64) *charmat.Matrix {
	constBySymbol, gapCells := classifyColumns(m)

	var numConst int
	for _, inds := range constBySymbol {
		numConst += len(inds)
	}
	if numConst == 0 {
		return m.KeepColumns(allColumns(m))
	}

	nTaxa := m.NumTaxa()
	estEquilLen := float64(m.NumCols()*nTaxa-gapCells) / float64(nTaxa)
	estNumInv := pInv * estEquilLen

	toCull := make(map[int]bool)
	for _, numByState := range numToCullByState(estNumInv, constBySymbol) {
		inds := constBySymbol[numByState.symbol]
		for i := 0; i < numByState.n; i++ {
			toCull[inds[i]] = true
		}
	}

	var keep []int
	for i := 0; i < m.NumCols(); i++ {
		if !toCull[i] {
			keep = append(keep, i)
		}
	}
	return m.KeepColumns(keep)
}

type stateCull struct {
	symbol byte
	n      int
}

// numToCullByState splits the target cull count across the state classes
// in proportion to class size, then pushes any rounding shortfall onto
// the classes in symbol order.
func numToCullByState(target float64, constBySymbol map[byte][]int) []stateCull {
	var numConst int
	for _, inds := range constBySymbol {
		numConst += len(inds)
	}
	invariantFrac := target / float64(numConst)
	ideal := int(math.Round(target))
	if ideal > numConst {
		ideal = numConst
	}

	symbols := maps.Keys(constBySymbol)
	slices.Sort(symbols)

	ans := make([]stateCull, 0, len(symbols))
	left := ideal
	for _, sym := range symbols {
		n := int(math.Round(invariantFrac * float64(len(constBySymbol[sym]))))
		if n > len(constBySymbol[sym]) {
			n = len(constBySymbol[sym])
		}
		if n > left {
			n = left
		}
		left -= n
		ans = append(ans, stateCull{symbol: sym, n: n})
	}
	// rounding may leave a shortfall
	for i := range ans {
		if left == 0 {
			break
		}
		room := len(constBySymbol[ans[i].symbol]) - ans[i].n
		if room > left {
			room = left
		}
		ans[i].n += room
		left -= room
	}
	return ans
}

func allColumns(m *charmat.Matrix) []int {
	ans := make([]int, m.NumCols())
	for i := range ans {
		ans[i] = i
	}
	return ans
}
