package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rterry/jewelboard/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGold    = lipgloss.AdaptiveColor{Dark: "#E8C468", Light: "#975A16"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the application title bar.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorGold).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// TabStyle and ActiveTabStyle render the category tab strip.
var TabStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Padding(0, 2)

var ActiveTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorGold).
	Padding(0, 2).
	Border(lipgloss.NormalBorder(), false, false, true, false).
	BorderForeground(ColorGold)

// MetricLabelStyle and MetricValueStyle render the summary metric row.
var MetricLabelStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

var MetricValueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// PanelStyle wraps secondary content areas (charts, front-desk lists).
var PanelStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ErrorStyle renders rejected submissions and persistence failures in
// the status bar.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// BarStyle renders histogram bars.
var BarStyle = lipgloss.NewStyle().
	Foreground(ColorGold)

// accents are the selectable accent palettes. The config's theme name
// picks one.
var accents = map[string]lipgloss.AdaptiveColor{
	"default":  ColorGold,
	"sapphire": ColorBlue,
	"emerald":  ColorGreen,
}

// Use applies the named accent palette to the shared styles. Unknown
// names keep the gold default.
func Use(name string) {
	accent, ok := accents[name]
	if !ok {
		accent = ColorGold
	}
	HeaderStyle = HeaderStyle.Background(accent)
	ActiveTabStyle = ActiveTabStyle.Foreground(accent).BorderForeground(accent)
	BarStyle = BarStyle.Foreground(accent)
}

// StatusStyle returns a color-coded style for a pipeline stage. Early
// stages are blue, production stages gold, pickup green.
func StatusStyle(status model.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch status {
	case model.StatusConsultation, model.StatusIntake:
		return base.Foreground(ColorBlue)
	case model.StatusDesignSketch, model.StatusCADModeling, model.Status3DApproval:
		return base.Foreground(ColorMagenta)
	case model.StatusWaitingForParts:
		return base.Foreground(ColorOrange)
	case model.StatusCasting, model.StatusStoneSetting, model.StatusFinalPolish,
		model.StatusInProgress, model.StatusQualityCheck:
		return base.Foreground(ColorGold)
	case model.StatusReadyForPickup:
		return base.Foreground(ColorGreen)
	case model.StatusCompleted:
		return base.Foreground(ColorGray)
	default:
		return base.Foreground(ColorGray)
	}
}

// FlagStyle returns a style for the Yes/No paid and overdue flags.
// yesIsGood flips the coloring: a Yes paid flag is green, a Yes overdue
// flag is red.
func FlagStyle(flag string, yesIsGood bool) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	if flag == model.FlagYes {
		if yesIsGood {
			return base.Foreground(ColorGreen)
		}
		return base.Foreground(ColorRed)
	}
	if yesIsGood {
		return base.Foreground(ColorYellow)
	}
	return base.Foreground(ColorGray)
}

// ComplexityStyle returns a color-coded style for a complexity rating.
func ComplexityStyle(c model.Complexity) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch c {
	case model.ComplexitySimple:
		return base.Foreground(ColorGreen)
	case model.ComplexityMedium:
		return base.Foreground(ColorYellow)
	case model.ComplexityComplex:
		return base.Foreground(ColorRed)
	default:
		return base.Foreground(ColorGray)
	}
}
