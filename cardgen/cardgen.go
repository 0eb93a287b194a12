// Package cardgen implements the per-format strategies that produce the raw
// cell sequences for new bingo cards, along with the position-sensitive hash
// used to tell generated cards apart.
package cardgen

import (
	bingo "github.com/tigredonorte/bingo-sub004"
)

// Strategy generates raw cell sequences for a single card format. Every call
// to GenerateCells produces one card's worth of cells in row-major order,
// satisfying all structural rules of the strategy's format.
type Strategy interface {
	Format() bingo.CardFormat
	Config() bingo.CardFormatConfig
	GenerateCells() ([]bingo.GeneratedCell, error)
}

// Strategies returns one strategy instance per supported format, keyed by
// format tag. Each strategy gets its own seeded random source so that the
// formats do not share a random stream.
func Strategies(rngSeed int64) map[bingo.CardFormat]Strategy {
	return map[bingo.CardFormat]Strategy{
		bingo.FormatFiveByFive:  NewFiveByFive(rngSeed),
		bingo.FormatThreeByNine: NewThreeByNine(rngSeed + 1),
	}
}
