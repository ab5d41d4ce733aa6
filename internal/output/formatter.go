package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"repostat.dev/repostat/internal/repostatus"
)

// Formatter renders check results
type Formatter struct {
	writer io.Writer
	styled bool
}

// NewFormatter creates a formatter writing to writer. When styled is false the
// output is plain text.
func NewFormatter(writer io.Writer, styled bool) *Formatter {
	return &Formatter{writer: writer, styled: styled}
}

// Header announces the path about to be checked
func (f *Formatter) Header(path string) error {
	_, err := fmt.Fprintf(f.writer, "Getting info for %q\n", path)
	return err
}

// Snapshot writes the status line and, for repositories, the branch line
func (f *Formatter) Snapshot(snap repostatus.Snapshot) error {
	if _, err := fmt.Fprintln(f.writer, f.statusLabel(snap.Status)); err != nil {
		return err
	}
	if !snap.IsRepository() {
		return nil
	}
	_, err := fmt.Fprintf(f.writer, "branch: %s\n", snap.BranchLabel())
	return err
}

func (f *Formatter) statusLabel(status repostatus.Status) string {
	label := status.String()
	if !f.styled {
		return label
	}
	return statusStyle(status).Render(label)
}

func statusStyle(status repostatus.Status) lipgloss.Style {
	switch status {
	case repostatus.Clean:
		return cleanStyle
	case repostatus.Dirty:
		return dirtyStyle
	default:
		return missingStyle
	}
}
