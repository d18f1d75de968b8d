package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wortiz/internal/ui/components"
	"github.com/abhisek/wortiz/internal/ui/theme"
	"github.com/abhisek/wortiz/internal/vocab"
)

var modeLabels = map[string]string{
	vocab.ModeRandom:   "naključno",
	vocab.ModeAdaptive: "prilagodljivo",
	vocab.ModeRemedial: "ponovitev",
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return s.renderError(width)
	}
	switch s.phase {
	case phaseLoading:
		return centered(width, theme.Hint.Render("\n\n  Pripravljam cikel ..."))
	case phaseSummary:
		return s.renderSummary(width)
	case phaseFeedback:
		return s.renderQuestion(width, true)
	default:
		return s.renderQuestion(width, false)
	}
}

func (s *Screen) renderError(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Incorrect.Render(s.errMsg)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint.Render("Pritisni katerokoli tipko za vrnitev.")))
	return b.String()
}

func (s *Screen) renderQuestion(width int, feedback bool) string {
	item := s.machine.Current()
	if item == nil {
		return ""
	}

	var b strings.Builder

	mode := modeLabels[s.cycleMode]
	if mode == "" {
		mode = s.cycleMode
	}
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Cikel %d · %s", s.cycleNumber, mode))
	right := theme.Hint.Render(fmt.Sprintf("%d/%d  ✓ %d  ✗ %d",
		s.machine.Position()+1, s.machine.Total(), s.correct, s.missed))
	b.WriteString(infoLine(left, right, width))
	b.WriteString("\n")

	percent := float64(s.machine.Position()) / float64(s.machine.Total())
	b.WriteString("  " + components.NewProgressBar("", percent, false, width-8).View())
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(prompt.Render(item.Translation))
	b.WriteString("\n\n")

	for i := range s.inputs {
		b.WriteString(centered(width, s.inputs[i].View()))
		b.WriteString("\n")
	}

	if feedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width, item))
	}
	return b.String()
}

func (s *Screen) renderFeedback(width int, item *vocab.Item) string {
	eval := s.machine.Evaluation()
	if eval == nil {
		return ""
	}

	var b strings.Builder
	if eval.Correct {
		b.WriteString(centered(width, theme.Correct.Render(eval.Message)))
	} else {
		b.WriteString(centered(width, theme.Incorrect.Render(eval.Message)))
		b.WriteString("\n")
		b.WriteString(centered(width, theme.German.Render(solutionLine(item))))
		if s.machine.RetryPending() {
			b.WriteString("\n")
			b.WriteString(centered(width, theme.Hint.Render("Beseda se bo ponovila v tem ciklu.")))
		}
	}

	if s.tip != nil {
		b.WriteString("\n\n")
		b.WriteString(centered(width, s.renderTip(width)))
	} else if s.tipPending {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint.Render("Namig prihaja ...")))
	}
	return b.String()
}

func (s *Screen) renderTip(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(s.tip.Headline))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(s.tip.Mnemonic))
	if s.tip.Example != "" {
		b.WriteString("\n")
		b.WriteString(theme.German.Render(s.tip.Example))
	}
	w := width - 16
	if w > 64 {
		w = 64
	}
	return theme.Card.Width(w).Render(b.String())
}

func (s *Screen) renderSummary(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Title.Render("Cikel zaključen")))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Body.Render(
		fmt.Sprintf("V tem ciklu: %d vprašanj, %d pravilnih, %d napačnih",
			s.answered, s.correct, s.missed))))
	b.WriteString("\n")

	if s.summary == nil {
		b.WriteString(centered(width, theme.Hint.Render("Nalagam statistiko ...")))
		return b.String()
	}
	if s.summary.Err != nil {
		b.WriteString(centered(width, theme.Incorrect.Render(s.summary.Err.Error())))
		return b.String()
	}

	b.WriteString(centered(width, theme.Hint.Render("Skupaj: "+s.summary.Snapshot.String())))
	b.WriteString("\n\n")
	next := modeLabels[s.summary.NextMode]
	if next == "" {
		next = s.summary.NextMode
	}
	b.WriteString(centered(width, theme.Body.Render("Priporočen naslednji način: "+next)))
	if s.missed > 0 {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render("Pritisni R za ponovitev napačnih besed.")))
	}
	return b.String()
}

func solutionLine(item *vocab.Item) string {
	if len(item.Solution) == 0 {
		return ""
	}
	if len(item.Solution) == 1 {
		return item.Solution[0]
	}
	parts := make([]string, len(item.Solution))
	for i, sol := range item.Solution {
		label := ""
		if i < len(item.Labels) {
			label = item.Labels[i] + ": "
		}
		parts[i] = label + sol
	}
	return strings.Join(parts, "  ·  ")
}

func infoLine(left, right string, width int) string {
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func centered(width int, content string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}
