package report

import (
	"time"

	"github.com/smykla-skalski/mcdirs/internal/color"
)

// Export unexported functions for external tests.
var (
	PadToWidth          = padToWidth
	ToCellWidths        = toCellWidths
	CalcColumnWidthsFor = calcColumnWidthsFor
	ShortenPath         = shortenPath
	DimBorders          = dimBorders
)

// RenderTableWithWidths renders rows with explicit column widths.
func RenderTableWithWidths(rows []Row, theme color.Theme, now time.Time, widths map[int]int) string {
	return renderTable(rows, theme, now, widths)
}

// SetHomeDir overrides the homeDir package variable for testing shortenPath.
func SetHomeDir(dir string) {
	homeDir = dir
}
