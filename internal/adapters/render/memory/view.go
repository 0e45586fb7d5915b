package memory

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/void-bridge/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	heatBarWidth = 24
	textPreview  = 48
)

func renderView(snapshot Snapshot, s styles) string {
	stats := snapshot.Stats
	lines := []string{
		s.title.Render("Void Memory"),
		s.header.Render(fmt.Sprintf("entries: %d/%d  tick: %d", stats.Count, stats.Capacity, stats.Tick)),
		statLine("heat", fmt.Sprintf("total %.2f, mean %.2f", stats.TotalHeat, stats.MeanHeat), s),
		statLine("churn", fmt.Sprintf("%.0f%%", clampPercent(stats.Churn*100)), s),
		statLine("totals", fmt.Sprintf("novel %d, reinforced %d, pruned %d, expired %d",
			stats.NovelTotal, stats.ReinforcedTotal, stats.PrunedTotal, stats.ExpiredTotal), s),
	}

	if len(snapshot.Top) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No entries.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	maxHeat, maxTTL := 0.0, 0.0
	for _, entry := range snapshot.Top {
		maxHeat = math.Max(maxHeat, entry.Heat)
		maxTTL = math.Max(maxTTL, entry.TTL)
	}

	for i, entry := range snapshot.Top {
		lines = append(lines, s.section.Render(renderEntry(i+1, entry, maxHeat, maxTTL, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statLine(key, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.statKey.Render(key+":"), " ", s.detail.Render(value))
}

// renderEntry scales the heat bar against the hottest listed entry and fades
// the ttl toward grey as it nears expiry.
func renderEntry(rank int, entry domain.RankedEntry, maxHeat, maxTTL float64, s styles) string {
	percent := 0.0
	if maxHeat > 0 {
		percent = entry.Heat / maxHeat * 100
	}

	heat := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.statKey.Render("heat:"),
		" ",
		renderProgressBar(percent, heatBarWidth, s),
		" ",
		s.detail.Render(fmt.Sprintf("%.2f", entry.Heat)),
	)

	ttlStyle := lipgloss.NewStyle().Foreground(interpolateColor(entry.TTL, 0, maxTTL))
	meta := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render(fmt.Sprintf("score %.3f", entry.Score)),
		"  ",
		ttlStyle.Render(fmt.Sprintf("ttl %.0f", entry.TTL)),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.entry.Render(fmt.Sprintf("#%d %s", rank, entry.ID)),
		s.detail.Render(preview(entry.Text)),
		heat,
		meta,
	)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= textPreview {
		return text
	}
	return string(runes[:textPreview-3]) + "..."
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, lo, hi float64) lipgloss.Color {
	if hi == lo {
		return lipgloss.Color("255")
	}

	normalized := math.Min(math.Max((value-lo)/(hi-lo), 0), 1)
	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}
