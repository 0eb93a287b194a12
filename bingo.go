// Package bingo contains the main domain types (and associated helper values
// and functions) shared by every part of the bingo card generation service.
package bingo

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// MinBatchCards represents the minimum number of cards a caller is
	// allowed to request in a single batch.
	MinBatchCards int = 1

	// MaxBatchCards represents the maximum number of cards a caller is
	// allowed to request in a single batch. The generation engine itself only
	// requires a positive count; this bound is enforced at the API boundary.
	MaxBatchCards int = 100
)

var (
	// ErrInvalidRange indicates that a column was asked for more distinct
	// numbers than its configured range can hold. It points at a misconfigured
	// format, so generation attempts that hit it are never retried.
	ErrInvalidRange = errors.New("requested count exceeds range size")

	// ErrGenerationExhausted indicates that a unique card could not be
	// produced for a session within the bounded attempt budget.
	ErrGenerationExhausted = errors.New("unable to generate unique card within attempt budget")

	// ErrUnknownFormat indicates that a caller asked for a card format the
	// service does not implement.
	ErrUnknownFormat = errors.New("unknown card format")
)

// CardFormat identifies one of the supported card shapes.
type CardFormat string

const (
	// FormatFiveByFive is the classic American 5x5 card with B/I/N/G/O
	// columns and a free space in the center.
	FormatFiveByFive CardFormat = "5x5"

	// FormatThreeByNine is the 90-ball housie/tambola ticket: 3 rows by 9
	// columns, 15 numbers, no free space.
	FormatThreeByNine CardFormat = "3x9"
)

// ParseCardFormat takes an arbitrary string and attempts to turn it into one
// of the supported card formats. Will error for any unrecognized value.
func ParseCardFormat(raw string) (CardFormat, error) {
	switch CardFormat(raw) {
	case FormatFiveByFive:
		return FormatFiveByFive, nil
	case FormatThreeByNine:
		return FormatThreeByNine, nil
	default:
		return "", fmt.Errorf("%q: %w", raw, ErrUnknownFormat)
	}
}

// CellType describes what a single grid position holds.
type CellType string

const (
	// CellTypeNumber marks a cell holding a drawn number.
	CellTypeNumber CellType = "number"
	// CellTypeFree marks the pre-filled free space of the 5x5 format.
	CellTypeFree CellType = "free"
	// CellTypeBlank marks an empty position of the 3x9 format.
	CellTypeBlank CellType = "blank"
)

// GeneratedCell represents a single position on a generated card, stored in
// row-major order. Value is only meaningful when Type is CellTypeNumber.
type GeneratedCell struct {
	Index int      `json:"index"`
	Value int      `json:"value,omitempty"`
	Type  CellType `json:"type"`
}

// ColumnRange is the inclusive interval of numbers a single column draws
// from.
type ColumnRange struct {
	Column int `json:"column"`
	Min    int `json:"min"`
	Max    int `json:"max"`
}

// Size returns how many distinct values the range can produce.
func (cr ColumnRange) Size() int {
	return cr.Max - cr.Min + 1
}

// CardFormatConfig describes the fixed geometry of a card format. One
// instance exists per format, and it should be treated as 100% immutable.
type CardFormatConfig struct {
	Rows       int `json:"rows"`
	Columns    int `json:"columns"`
	TotalCells int `json:"totalCells"`

	// HasFreeSpace indicates whether the format pre-fills one cell. When it
	// is true, FreeSpaceIndex holds that cell's row-major position.
	HasFreeSpace   bool `json:"hasFreeSpace"`
	FreeSpaceIndex int  `json:"freeSpaceIndex,omitempty"`

	// ColumnRanges has exactly one entry per column, ordered by column.
	ColumnRanges []ColumnRange `json:"columnRanges"`
}

// BingoCard represents a single generated card. Cards are created atomically
// by the generator service once all structural invariants hold and the hash
// has been registered for the session, and are immutable afterwards.
type BingoCard struct {
	ID        uuid.UUID       `json:"id"`
	SessionID string          `json:"sessionId"`
	Format    CardFormat      `json:"format"`
	Cells     []GeneratedCell `json:"cells"`
	Hash      string          `json:"hash"`
	CreatedAt time.Time       `json:"createdAt"`
}
