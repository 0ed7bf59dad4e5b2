package report

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	Cyan   = lipgloss.Color("#00E5FF")
	Yellow = lipgloss.Color("#FFB500")
	Green  = lipgloss.Color("#2AFFAA")
	Red    = lipgloss.Color("#FF5555")
	Purple = lipgloss.Color("#8B5CF6")
	Muted  = lipgloss.Color("#6C7280")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(Purple).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	warnStyle    = lipgloss.NewStyle().Foreground(Yellow)
	upStyle      = lipgloss.NewStyle().Foreground(Green)
	downStyle    = lipgloss.NewStyle().Foreground(Red)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)
