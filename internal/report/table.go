package report

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/smykla-skalski/mcdirs/internal/color"
)

var headers = []string{"", "Profile", "Game directory", "Version", "Last used"}

// StatusIcon returns a single-width character icon for a row.
func StatusIcon(r Row) string {
	switch r.Status() {
	case StatusOK:
		return "✓"
	case StatusMissing:
		return "✗"
	default:
		return "-"
	}
}

// StyledIcon returns a StatusIcon colored by the theme.
func StyledIcon(r Row, theme color.Theme) string {
	icon := StatusIcon(r)

	switch r.Status() {
	case StatusOK:
		return theme.OK.Render(icon)
	case StatusMissing:
		return theme.Missing.Render(icon)
	default:
		return theme.Skip.Render(icon)
	}
}

// RenderTable builds a table of rows using tablewriter. Long paths wrap
// within their cells when the terminal width is known.
func RenderTable(rows []Row, theme color.Theme, now time.Time) string {
	return renderTable(rows, theme, now, calcColumnWidthsFor(termWidth(), rows, now))
}

func renderTable(rows []Row, theme color.Theme, now time.Time, colWidths map[int]int) string {
	if len(rows) == 0 {
		return ""
	}

	var buf bytes.Buffer

	opts := []tablewriter.Option{
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
		tablewriter.WithConfig(tablewriter.NewConfigBuilder().
			WithTrimSpace(tw.Off).
			Row().Formatting().WithAutoWrap(tw.WrapNormal).Build().
			Build().Build()),
	}

	if colWidths != nil {
		opts = append(opts, tablewriter.WithColumnWidths(toCellWidths(colWidths)))
	}

	t := tablewriter.NewTable(&buf, opts...)

	t.Header(headers)

	for _, r := range rows {
		_ = t.Append(buildRow(r, theme, now, colWidths))
	}

	_ = t.Render()

	output := strings.TrimRight(buf.String(), "\n")

	return dimBorders(output, theme)
}

// buildRow creates a table row, padding cells to the target column widths
// when set.
func buildRow(r Row, theme color.Theme, now time.Time, colWidths map[int]int) []string {
	name := r.DisplayName()
	if r.Selected {
		name = theme.Selected.Render(name + " *")
	}

	row := []string{
		StyledIcon(r, theme),
		name,
		styleCell(r.GameDir, theme),
		styleCell(r.Version, theme),
		theme.Muted.Render(LastUsedString(r.LastUsed, now)),
	}

	if colWidths != nil {
		for i, cell := range row {
			if w, ok := colWidths[i]; ok {
				row[i] = padToWidth(cell, w)
			}
		}
	}

	return row
}

func styleCell(c Cell, theme color.Theme) string {
	text := shortenPath(c.Text)
	if c.Missing {
		return theme.Missing.Render(text)
	}

	return text
}

// toCellWidths converts content widths to cell widths (content + left/right
// padding) for WithColumnWidths.
func toCellWidths(contentWidths map[int]int) tw.Mapper[int, int] {
	const padW = 2 // " " left + " " right

	m := make(tw.Mapper[int, int], len(contentWidths))
	for col, w := range contentWidths {
		m[col] = w + padW
	}

	return m
}

// padToWidth right-pads s with spaces so its display width reaches w.
// ANSI escape codes are excluded from width calculation.
func padToWidth(s string, w int) string {
	visible := runewidth.StringWidth(ansi.Strip(s))
	if visible >= w {
		return s
	}

	return s + strings.Repeat(" ", w-visible)
}

// dimBorders applies the muted theme style to all box-drawing border
// characters in the rendered table output.
func dimBorders(s string, theme color.Theme) string {
	for _, ch := range []string{
		"╭", "╮", "╰", "╯", "│", "─", "┬", "┴", "├", "┤", "┼",
	} {
		s = strings.ReplaceAll(s, ch, theme.Muted.Render(ch))
	}

	return s
}

// RenderSummary returns a colored summary line.
func RenderSummary(rows []Row, theme color.Theme) string {
	s := Summarize(rows)

	parts := []string{
		theme.OK.Render(fmt.Sprintf("%d ok", s.OK)),
		styleSummaryPart(fmt.Sprintf("%d missing", s.Missing), s.Missing > 0, theme.Missing),
	}

	if s.Unchecked > 0 {
		parts = append(parts, theme.Skip.Render(fmt.Sprintf("%d unchecked", s.Unchecked)))
	}

	return "Summary: " + strings.Join(parts, ", ")
}

func styleSummaryPart(text string, active bool, style lipgloss.Style) string {
	if active {
		return style.Render(text)
	}

	return text
}

// calcColumnWidthsFor computes per-column content widths for a terminal of
// width w. The profile and last-used columns keep their natural width and the
// two location columns share the rest. Returns nil when w is too narrow for a
// table or unknown.
func calcColumnWidthsFor(w int, rows []Row, now time.Time) map[int]int {
	const minTableW = 60

	if w < minTableW {
		return nil
	}

	const iconW = 1

	nameW := runewidth.StringWidth(headers[1])
	lastUsedW := runewidth.StringWidth(headers[4])

	for _, r := range rows {
		name := r.DisplayName()
		if r.Selected {
			name += " *"
		}

		nameW = max(nameW, runewidth.StringWidth(name))
		lastUsedW = max(lastUsedW, runewidth.StringWidth(LastUsedString(r.LastUsed, now)))
	}

	// Each column has: 1 border char + 1 left pad + 1 right pad = 3.
	// Plus 1 trailing border on the right.
	const colOverhead = 3

	overhead := len(headers)*colOverhead + 1
	available := w - overhead - iconW - lastUsedW

	const (
		minLocationW = 30
		minNameW     = 7
	)

	if available < minLocationW+minNameW {
		return nil
	}

	if nameW > available-minLocationW {
		nameW = available - minLocationW
	}

	remaining := available - nameW

	// 60/40 split between game directory and version.
	gameDirW := remaining * 60 / 100 //nolint:mnd // layout ratio

	return map[int]int{
		0: iconW,
		1: nameW,
		2: gameDirW,
		3: remaining - gameDirW,
		4: lastUsedW,
	}
}

// termWidth returns the terminal width or 0 if not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(
		int(os.Stdout.Fd()), //nolint:gosec // fd fits int
	); err == nil && w > 0 {
		return w
	}

	return 0
}

// homeDir caches the user's home directory for path shortening.
var homeDir string

func init() {
	homeDir, _ = os.UserHomeDir()
}

// shortenPath replaces the user's home directory prefix with ~.
func shortenPath(s string) string {
	if homeDir == "" || !strings.HasPrefix(s, homeDir) {
		return s
	}

	return "~" + strings.TrimPrefix(s, homeDir)
}
