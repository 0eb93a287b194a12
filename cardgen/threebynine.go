package cardgen

import (
	"sort"

	"github.com/rs/zerolog/log"

	bingo "github.com/tigredonorte/bingo-sub004"
	"github.com/tigredonorte/bingo-sub004/shuffler"
)

// threeByNineConfig returns the fixed geometry of the 90-ball housie ticket.
// Column ranges are exclusive per column, with the last column absorbing 90.
func threeByNineConfig() bingo.CardFormatConfig {
	return bingo.CardFormatConfig{
		Rows:         3,
		Columns:      9,
		TotalCells:   27,
		HasFreeSpace: false,
		ColumnRanges: []bingo.ColumnRange{
			{Column: 0, Min: 1, Max: 9},
			{Column: 1, Min: 10, Max: 19},
			{Column: 2, Min: 20, Max: 29},
			{Column: 3, Min: 30, Max: 39},
			{Column: 4, Min: 40, Max: 49},
			{Column: 5, Min: 50, Max: 59},
			{Column: 6, Min: 60, Max: 69},
			{Column: 7, Min: 70, Max: 79},
			{Column: 8, Min: 80, Max: 90},
		},
	}
}

// ThreeByNine generates cells for the 3x9 no-free-space format: 15 numbers in
// 27 cells, exactly 5 per row, 1 to 3 per column, ascending within a column.
type ThreeByNine struct {
	shuffler *shuffler.Shuffler
	config   bingo.CardFormatConfig
}

var _ Strategy = &ThreeByNine{}

// NewThreeByNine creates a new instance of the 3x9 strategy.
func NewThreeByNine(rngSeed int64) *ThreeByNine {
	return &ThreeByNine{
		shuffler: shuffler.New(rngSeed),
		config:   threeByNineConfig(),
	}
}

// Format returns the strategy's format tag.
func (t *ThreeByNine) Format() bingo.CardFormat {
	return bingo.FormatThreeByNine
}

// Config returns the strategy's immutable geometry.
func (t *ThreeByNine) Config() bingo.CardFormatConfig {
	return t.config
}

// GenerateCells produces one ticket's worth of cells in row-major order. It
// first distributes the 15 numbers across columns, then assigns them to rows
// with the repair heuristic (falling back to the capacity-tracking assignment
// if the heuristic stalls), and finally draws and places the actual numbers.
func (t *ThreeByNine) GenerateCells() ([]bingo.GeneratedCell, error) {
	counts := generateColumnDistribution(t.shuffler)

	grid := seedRowAssignment(t.shuffler, counts)
	if !repairRowAssignment(&grid) {
		// Not an error: the fallback is correct by construction.
		log.Debug().
			Ints("columnCounts", counts).
			Msg("row assignment heuristic stalled, rebuilding with capacity fallback")
		grid = assignRowsByCapacity(t.shuffler, counts)
	}

	return t.materialize(counts, grid)
}

// materialize turns an occupancy grid into concrete cells. For each column it
// draws the column's numbers, sorts them ascending, and hands them to the
// marked rows top to bottom. Unmarked positions become blanks.
func (t *ThreeByNine) materialize(counts []int, grid occupancyGrid) ([]bingo.GeneratedCell, error) {
	cells := make([]bingo.GeneratedCell, t.config.TotalCells)
	for i := range cells {
		cells[i] = bingo.GeneratedCell{Index: i, Type: bingo.CellTypeBlank}
	}

	for _, columnRange := range t.config.ColumnRanges {
		col := columnRange.Column
		values, err := t.shuffler.DrawDistinct(columnRange.Min, columnRange.Max, counts[col])
		if err != nil {
			return nil, err
		}
		sort.Ints(values)

		next := 0
		for row := 0; row < gridRows; row++ {
			if !grid[row][col] {
				continue
			}
			index := row*t.config.Columns + col
			cells[index] = bingo.GeneratedCell{
				Index: index,
				Value: values[next],
				Type:  bingo.CellTypeNumber,
			}
			next++
		}
	}
	return cells, nil
}
