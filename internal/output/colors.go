package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	cleanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dirtyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ShouldColor reports whether styled output should be written to f
func ShouldColor(f *os.File) bool {
	if termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
