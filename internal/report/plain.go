package report

import (
	"fmt"
	"io"
	"time"
)

// WritePlain writes one tab-separated line per row:
// id, name, game directory, version, last used (RFC 3339 or empty),
// status, and "*" for the selected profile or "-" otherwise.
func WritePlain(w io.Writer, rows []Row) error {
	for _, r := range rows {
		lastUsed := ""
		if !r.LastUsed.IsZero() {
			lastUsed = r.LastUsed.UTC().Format(time.RFC3339)
		}

		selected := "-"
		if r.Selected {
			selected = "*"
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Name,
			r.GameDir.Text,
			r.Version.Text,
			lastUsed,
			r.Status(),
			selected,
		); err != nil {
			return err
		}
	}

	return nil
}
