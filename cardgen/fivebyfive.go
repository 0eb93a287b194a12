package cardgen

import (
	bingo "github.com/tigredonorte/bingo-sub004"
	"github.com/tigredonorte/bingo-sub004/shuffler"
)

// fiveByFiveConfig returns the fixed geometry of the classic American card.
// Each column corresponds to a different "letter group" on the board:
//
// 1. Column 0 is column B and can have numbers 1–15
// 2. Column 1 is column I and can have numbers 16–30
// 3. Column 2 is column N and can have numbers 31–45, along with the free
//    space in the middle
// 4. Column 3 is column G and can have numbers 46–60
// 5. Column 4 is column O and can have numbers 61–75
func fiveByFiveConfig() bingo.CardFormatConfig {
	return bingo.CardFormatConfig{
		Rows:           5,
		Columns:        5,
		TotalCells:     25,
		HasFreeSpace:   true,
		FreeSpaceIndex: 12,
		ColumnRanges: []bingo.ColumnRange{
			{Column: 0, Min: 1, Max: 15},
			{Column: 1, Min: 16, Max: 30},
			{Column: 2, Min: 31, Max: 45},
			{Column: 3, Min: 46, Max: 60},
			{Column: 4, Min: 61, Max: 75},
		},
	}
}

// FiveByFive generates cells for the 5x5 free-space format.
type FiveByFive struct {
	shuffler *shuffler.Shuffler
	config   bingo.CardFormatConfig
}

var _ Strategy = &FiveByFive{}

// NewFiveByFive creates a new instance of the 5x5 strategy.
func NewFiveByFive(rngSeed int64) *FiveByFive {
	return &FiveByFive{
		shuffler: shuffler.New(rngSeed),
		config:   fiveByFiveConfig(),
	}
}

// Format returns the strategy's format tag.
func (f *FiveByFive) Format() bingo.CardFormat {
	return bingo.FormatFiveByFive
}

// Config returns the strategy's immutable geometry.
func (f *FiveByFive) Config() bingo.CardFormatConfig {
	return f.config
}

// GenerateCells produces one card's worth of cells in row-major order. Each
// column's five numbers are drawn independently from that column's range, so
// values can never repeat within a column. The center cell is replaced with
// the free space after the draws.
func (f *FiveByFive) GenerateCells() ([]bingo.GeneratedCell, error) {
	cells := make([]bingo.GeneratedCell, f.config.TotalCells)
	for _, columnRange := range f.config.ColumnRanges {
		values, err := f.shuffler.DrawDistinct(columnRange.Min, columnRange.Max, f.config.Rows)
		if err != nil {
			return nil, err
		}
		for row := 0; row < f.config.Rows; row++ {
			index := row*f.config.Columns + columnRange.Column
			cells[index] = bingo.GeneratedCell{
				Index: index,
				Value: values[row],
				Type:  bingo.CellTypeNumber,
			}
		}
	}

	cells[f.config.FreeSpaceIndex] = bingo.GeneratedCell{
		Index: f.config.FreeSpaceIndex,
		Type:  bingo.CellTypeFree,
	}
	return cells, nil
}
