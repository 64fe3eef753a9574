package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robmorgan/clave/logger"
	"github.com/robmorgan/clave/playback"
	"github.com/robmorgan/clave/rhythm"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case beatMsg:
		// a beat read just before the session was joined can arrive late
		if m.beats == nil || (m.step != stepRunning && m.step != stepStopping) {
			return m, nil
		}
		m.position = msg.position
		m.accent = msg.accent
		return m, listenForBeats(m.beats)

	case sessionStoppedMsg:
		m.session = nil
		m.beats = nil
		m.err = msg.err
		if m.quitting {
			return m, tea.Quit
		}
		m = m.restart()
		return m, textinput.Blink

	case spinner.TickMsg:
		if m.step != stepStopping {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || (msg.String() == "esc" && m.step != stepRunning && m.step != stepStopping) {
		m.quitting = true
		if m.session == nil {
			return m, tea.Quit
		}
		return m.stop()
	}

	switch m.step {
	case stepBeats:
		if msg.String() != "enter" {
			return m.updateInput(msg)
		}
		beats, err := parsePositive(m.input.Value(), "beats in a bar")
		if err != nil {
			m.err = err
			return m, nil
		}
		m.beatsInBar = beats
		m.err = nil
		m.step = stepTempo
		m.input.Reset()

	case stepTempo:
		if msg.String() != "enter" {
			return m.updateInput(msg)
		}
		tempo, err := parsePositive(m.input.Value(), "tempo")
		if err != nil {
			m.err = err
			return m, nil
		}
		m.tempo = tempo
		m.err = nil
		m.choices = rhythm.GroupingChoices(m.cfg.GroupSizes, m.beatsInBar)
		m.cursor = 0
		m.step = stepGrouping
		m.input.Reset()
		m.input.Blur()

	case stepGrouping:
		switch key := msg.String(); key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter", " ":
			return m.start()
		case "backspace":
			m.step = stepTempo
			m.input.Focus()
		default:
			if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.choices) {
				m.cursor = n - 1
			}
		}

	case stepRunning:
		if msg.String() == "q" {
			return m.stop()
		}
	}

	return m, nil
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.step != stepBeats && m.step != stepTempo {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) start() (tea.Model, tea.Cmd) {
	params := playback.Params{
		Tempo:      m.tempo,
		BeatsInBar: m.beatsInBar,
		Grouping:   m.choices[m.cursor],
	}

	plan, err := playback.NewPlan(m.cfg, params)
	if err != nil {
		// most likely a tempo too fast for the tick, so ask again
		m.err = err
		m.step = stepTempo
		m.input.Focus()
		return m, textinput.Blink
	}

	beats := make(chan beatMsg, 1)
	session, err := m.controller.Start(plan, playback.Options{Observer: observe(beats)})
	if err != nil {
		logger.GetProjectLogger().Errorf("Could not start playback: %v", err)
		m.err = err
		return m, nil
	}

	m.err = nil
	m.session = session
	m.beats = beats
	m.position = rhythm.Position{}
	m.step = stepRunning
	return m, tea.Batch(listenForBeats(beats), waitForSession(session, beats))
}

// stop signals the worker. The session is joined by waitForSession, which
// was started with it.
func (m Model) stop() (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}
	m.session.Stop()
	m.step = stepStopping
	return m, m.spinner.Tick
}

// restart returns to the first prompt, keeping any error for display.
func (m Model) restart() Model {
	m.step = stepBeats
	m.beatsInBar = 0
	m.tempo = 0
	m.choices = nil
	m.cursor = 0
	m.input.Reset()
	m.input.Focus()
	return m
}

func parsePositive(value, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a whole number above zero", what)
	}
	return n, nil
}
