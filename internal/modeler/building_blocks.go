package modeler

import "perfmodel/domain/model"

// exponent is one point of the default search grid.
type exponent struct {
	num, den int64
	log      int64
}

// defaultExponents spans the polynomial exponents 0..3 in rational steps
// crossed with log2 exponents 0..2. The all-zero combination is excluded;
// that shape is the constant baseline, not a term.
var defaultExponents = buildDefaultExponents()

func buildDefaultExponents() []exponent {
	poly := [][2]int64{
		{0, 1}, {1, 4}, {1, 3}, {1, 2}, {2, 3}, {3, 4}, {4, 5},
		{1, 1}, {5, 4}, {4, 3}, {3, 2}, {5, 3}, {7, 4}, {2, 1},
		{9, 4}, {7, 3}, {5, 2}, {3, 1},
	}
	logs := []int64{0, 1, 2}
	var grid []exponent
	for _, p := range poly {
		for _, l := range logs {
			if p[0] == 0 && l == 0 {
				continue
			}
			grid = append(grid, exponent{num: p[0], den: p[1], log: l})
		}
	}
	return grid
}

// DefaultBuildingBlocks returns the candidate compound terms of the default
// search space, each with coefficient 1. Callers must copy a block before
// fitting it; fitting mutates coefficients in place.
func DefaultBuildingBlocks() []*model.CompoundTerm {
	blocks := make([]*model.CompoundTerm, 0, len(defaultExponents))
	for _, e := range defaultExponents {
		blocks = append(blocks, model.NewCompoundTermFromExponents(e.num, e.den, e.log))
	}
	return blocks
}
