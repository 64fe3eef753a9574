package tui

import (
	"fmt"
	"strings"

	"github.com/robmorgan/clave/rhythm"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("clave"))
	b.WriteString("\n\n")

	switch m.step {
	case stepBeats:
		b.WriteString("How many beats in a bar?\n\n")
		b.WriteString(m.input.View())
		b.WriteString(m.styles.help.Render("enter to continue • esc to quit"))

	case stepTempo:
		fmt.Fprintf(&b, "Beats in a bar: %d\n\nTempo (bpm)?\n\n", m.beatsInBar)
		b.WriteString(m.input.View())
		b.WriteString(m.styles.help.Render("enter to continue • esc to quit"))

	case stepGrouping:
		fmt.Fprintf(&b, "%d beats at %d bpm. Choose a grouping:\n\n", m.beatsInBar, m.tempo)
		for i, g := range m.choices {
			line := fmt.Sprintf("%4d)  %s", i+1, choiceLabel(g, m.beatsInBar))
			if i == m.cursor {
				line = m.styles.selected.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
		b.WriteString(m.styles.help.Render("↑/↓ to move • enter to play • backspace to change tempo"))

	case stepRunning, stepStopping:
		b.WriteString(m.runningView())
	}

	if m.err != nil {
		b.WriteString("\n" + m.styles.err.Render("Error: "+m.err.Error()) + "\n")
	}
	if m.quitting {
		b.WriteString("\n")
	}
	return m.styles.app.Render(b.String())
}

func (m Model) runningView() string {
	var b strings.Builder
	plan := m.session.Plan()
	met := plan.Metronome

	fmt.Fprintf(&b, "%d bpm • %d beats • %s\n\n", met.GetTempo(), met.GetBeatsPerBar(), choiceLabel(met.GetGrouping(), met.GetBeatsPerBar()))

	cells := make([]string, 0, met.GetBeatsPerBar())
	for beat := 1; beat <= met.GetBeatsPerBar(); beat++ {
		accent := met.AccentOf(beat)
		label := fmt.Sprintf("%d", beat)
		if m.position.Beat == beat {
			cells = append(cells, m.styles.lit[accent].Render(label))
		} else {
			cells = append(cells, m.styles.dim[accent].Render(label))
		}
	}
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("\n\n")

	if m.position.Bar > 0 {
		fmt.Fprintf(&b, "Bar %d", m.position.Bar)
	}

	if m.step == stepStopping {
		b.WriteString("\n\n" + m.spinner.View() + " Stopping...")
		return b.String()
	}
	b.WriteString(m.styles.help.Render("q to stop • ctrl+c to quit"))
	return b.String()
}

func choiceLabel(g rhythm.Grouping, beatsInBar int) string {
	if g.IsNoGrouping(beatsInBar) {
		return "No Grouping"
	}
	return g.String()
}
