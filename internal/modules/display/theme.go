package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aristath/sacra/internal/modules/scoring"
)

// Theme holds the semantic color palette for terminal reports.
type Theme struct {
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// Default theme uses Charmbracelet's CharmTone palette.
var Default = Theme{
	Border:  lipgloss.Color("#4D4C57"), // Iron
	Muted:   lipgloss.Color("#858392"), // Squid
	Text:    lipgloss.Color("#DFDBDD"), // Ash
	Primary: lipgloss.Color("#6B50FF"), // Charple
	Accent:  lipgloss.Color("#FF60FF"), // Dolly
	Success: lipgloss.Color("#00FFB2"), // Julep
	Warning: lipgloss.Color("#FFD300"),
	Error:   lipgloss.Color("#E94090"),
	Info:    lipgloss.Color("#00CED1"),
}

// TierColor picks the palette color for an overall tier.
func (t Theme) TierColor(tier scoring.Tier) lipgloss.Color {
	switch tier {
	case scoring.TierExcellent, scoring.TierVeryGood:
		return t.Success
	case scoring.TierGood:
		return t.Info
	case scoring.TierModerate:
		return t.Warning
	default:
		return t.Accent
	}
}

// JudgmentColor picks the palette color for a judgment tier.
func (t Theme) JudgmentColor(tier scoring.JudgmentTier) lipgloss.Color {
	switch tier {
	case scoring.JudgmentFavorable:
		return t.Success
	case scoring.JudgmentNeutral:
		return t.Info
	case scoring.JudgmentChallenging:
		return t.Warning
	default:
		return t.Error
	}
}
