package cardgen

import (
	"sort"

	"github.com/tigredonorte/bingo-sub004/shuffler"
)

// Grid geometry and cardinality rules for the 3x9 ticket.
const (
	gridRows    = 3
	gridColumns = 9

	// totalNumbers is how many cells of the 27 hold a number.
	totalNumbers = 15
	// rowTarget is the number of filled cells every row must end with.
	rowTarget = 5
	// minPerColumn and maxPerColumn bound how many numbers a column may hold.
	minPerColumn = 1
	maxPerColumn = 3

	// topUpProbability is the chance that a column receives extra numbers
	// during the probabilistic pass of the column distribution.
	topUpProbability = 0.7

	// repairIterationBudget bounds the row-assignment repair loop. Exceeding
	// it is recovered by the capacity fallback, never surfaced as an error.
	repairIterationBudget = 1000
)

// occupancyGrid marks which of the 27 positions hold a number. Rows first,
// columns second.
type occupancyGrid [gridRows][gridColumns]bool

// generateColumnDistribution produces the per-column number counts: nine
// values, each between 1 and 3, summing to 15. Every column starts with one
// number; the remaining six are handed out probabilistically over a shuffled
// column order, and whatever is left after that pass is swept onto columns
// with spare capacity left to right. The sweep guarantees termination since
// total capacity (27) always exceeds the total number count.
func generateColumnDistribution(s *shuffler.Shuffler) []int {
	counts := make([]int, gridColumns)
	for i := range counts {
		counts[i] = minPerColumn
	}
	remaining := totalNumbers - gridColumns*minPerColumn

	order := make([]int, gridColumns)
	for i := range order {
		order[i] = i
	}
	for _, col := range s.Shuffle(order) {
		if remaining == 0 {
			break
		}
		maxAdd := min3(maxPerColumn-counts[col], remaining, 2)
		if maxAdd < 1 || !s.Chance(topUpProbability) {
			continue
		}
		add := s.Intn(maxAdd) + 1
		counts[col] += add
		remaining -= add
	}

	for remaining > 0 {
		for col := 0; col < gridColumns && remaining > 0; col++ {
			if counts[col] < maxPerColumn {
				counts[col]++
				remaining--
			}
		}
	}
	return counts
}

// seedRowAssignment builds an occupancy grid that satisfies the column counts
// but not necessarily the row totals: each column marks its count's worth of
// randomly chosen rows.
func seedRowAssignment(s *shuffler.Shuffler, counts []int) occupancyGrid {
	var grid occupancyGrid
	rows := []int{0, 1, 2}
	for col, count := range counts {
		for _, row := range s.Shuffle(rows)[:count] {
			grid[row][col] = true
		}
	}
	return grid
}

// repairRowAssignment nudges a seeded grid toward five numbers per row while
// preserving every column's total. Each iteration either transfers a number
// from an overfull row to an underfull row within one column, or exchanges
// two numbers across two rows and two columns when that strictly lowers the
// total deviation from the row target. Returns false if the budget runs out
// or no move makes progress, in which case the caller should rebuild the grid
// with assignRowsByCapacity.
func repairRowAssignment(grid *occupancyGrid) bool {
	for i := 0; i < repairIterationBudget; i++ {
		counts := rowCounts(grid)
		over, under := -1, -1
		for row, count := range counts {
			if count > rowTarget && over == -1 {
				over = row
			}
			if count < rowTarget && under == -1 {
				under = row
			}
		}
		if over == -1 && under == -1 {
			return true
		}

		if over != -1 && under != -1 && transferNumber(grid, over, under) {
			continue
		}
		if !applyBalancingSwap(grid, counts) {
			return false
		}
	}
	return false
}

// transferNumber moves one number from row "from" to row "to" within the
// first column that has a number in "from" but not in "to". The move keeps
// that column's total intact. Reports whether a column was found.
func transferNumber(grid *occupancyGrid, from int, to int) bool {
	for col := 0; col < gridColumns; col++ {
		if grid[from][col] && !grid[to][col] {
			grid[from][col] = false
			grid[to][col] = true
			return true
		}
	}
	return false
}

// applyBalancingSwap scans columns then rows in index order for a pair of
// rows and a pair of columns where row1 holds col1 but not col2 and row2
// holds col2 but not col1, and exchanges the two marks if doing so strictly
// reduces the combined deviation of the two rows from the row target.
// Earliest indices win ties. Reports whether a swap was applied.
func applyBalancingSwap(grid *occupancyGrid, counts [gridRows]int) bool {
	for col1 := 0; col1 < gridColumns; col1++ {
		for col2 := 0; col2 < gridColumns; col2++ {
			if col1 == col2 {
				continue
			}
			for row1 := 0; row1 < gridRows; row1++ {
				for row2 := 0; row2 < gridRows; row2++ {
					if row1 == row2 {
						continue
					}
					if !grid[row1][col1] || grid[row1][col2] || !grid[row2][col2] || grid[row2][col1] {
						continue
					}

					candidate := *grid
					candidate[row1][col1], candidate[row1][col2] = false, true
					candidate[row2][col2], candidate[row2][col1] = false, true

					before := absDeviation(counts[row1]) + absDeviation(counts[row2])
					swapped := rowCounts(&candidate)
					after := absDeviation(swapped[row1]) + absDeviation(swapped[row2])
					if after >= before {
						continue
					}

					*grid = candidate
					return true
				}
			}
		}
	}
	return false
}

// assignRowsByCapacity rebuilds the grid in a single pass with explicit
// per-row capacity tracking: every column marks its count's worth of rows
// chosen from those with capacity left, decrementing as it goes. Rows with
// more remaining capacity are preferred (random tie-break), which keeps the
// three capacities within one of each other, so a column can never find
// fewer open rows than it needs. No backtracking is ever required.
func assignRowsByCapacity(s *shuffler.Shuffler, counts []int) occupancyGrid {
	var grid occupancyGrid
	capacity := [gridRows]int{rowTarget, rowTarget, rowTarget}

	for col, count := range counts {
		var open []int
		for row := 0; row < gridRows; row++ {
			if capacity[row] > 0 {
				open = append(open, row)
			}
		}
		open = s.Shuffle(open)
		sort.SliceStable(open, func(i, j int) bool {
			return capacity[open[i]] > capacity[open[j]]
		})

		for _, row := range open[:count] {
			grid[row][col] = true
			capacity[row]--
		}
	}
	return grid
}

func rowCounts(grid *occupancyGrid) [gridRows]int {
	var counts [gridRows]int
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridColumns; col++ {
			if grid[row][col] {
				counts[row]++
			}
		}
	}
	return counts
}

func absDeviation(count int) int {
	if count < rowTarget {
		return rowTarget - count
	}
	return count - rowTarget
}

func min3(a int, b int, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
