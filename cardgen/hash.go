package cardgen

import (
	"strconv"
	"strings"

	bingo "github.com/tigredonorte/bingo-sub004"
)

// hashSeparator joins the per-cell tokens of a card hash.
const hashSeparator = "-"

// GenerateCardHash derives a deterministic, position-sensitive fingerprint
// from a card's cells. Each cell maps to a short token ("F" for the free
// space, "B" for a blank, the decimal value for a number), joined in index
// order. Two cards collide only when they hold identical values in identical
// positions; reordering the same values produces a different hash. The hash
// certifies layout identity, not multiset identity.
func GenerateCardHash(cells []bingo.GeneratedCell) string {
	tokens := make([]string, len(cells))
	for i, cell := range cells {
		switch cell.Type {
		case bingo.CellTypeFree:
			tokens[i] = "F"
		case bingo.CellTypeBlank:
			tokens[i] = "B"
		default:
			tokens[i] = strconv.Itoa(cell.Value)
		}
	}
	return strings.Join(tokens, hashSeparator)
}
