package game

import (
	"math"

	"github.com/vbelenko/termblast/internal/core"
)

// The sprite sheet is a fixed 4x4 grid. Atlas regions are normalized
// fractions of the sheet, so a cell is 1/4 on each axis.
const (
	sheetCols = 4
	sheetRows = 4
)

// AtlasCell returns the normalized atlas region for the sheet cell at
// (col, row).
func AtlasCell(col, row int) core.Rect {
	return core.Rect{
		X: float64(col) / sheetCols,
		Y: float64(row) / sheetRows,
		W: 1.0 / sheetCols,
		H: 1.0 / sheetRows,
	}
}

// AtlasIndex recovers the sheet cell coordinates from a region produced
// by AtlasCell. ok is false for regions that are not exact sheet cells,
// including the zero rect of an unwritten slot.
func AtlasIndex(r core.Rect) (col, row int, ok bool) {
	col = int(math.Round(r.X * sheetCols))
	row = int(math.Round(r.Y * sheetRows))
	if r.W == 0 || r.H == 0 || col < 0 || col >= sheetCols || row < 0 || row >= sheetRows {
		return 0, 0, false
	}
	return col, row, true
}

// Named sheet cells. Entities pick their region from these rather than
// computing fractions inline.
var (
	cellPlayerRight = AtlasCell(0, 0)
	cellPlayerLeft  = AtlasCell(2, 0)
	cellEnemyEyes   = AtlasCell(3, 0)

	cellEnemyShot  = AtlasCell(0, 1)
	cellEnemyBodyA = AtlasCell(1, 1)
	cellEnemyBodyB = AtlasCell(2, 1)
	cellPlayerShot = AtlasCell(3, 1)

	cellHealthBorder = AtlasCell(0, 2)
	cellHealthFill   = AtlasCell(1, 2)
	cellBackdropWin  = AtlasCell(2, 2)
	cellBackdropOver = AtlasCell(3, 2)

	cellBackdropTitle   = AtlasCell(0, 3)
	cellBackdropTitle2  = AtlasCell(1, 3)
	cellBackdropCleared = AtlasCell(2, 3)
)
