package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robmorgan/clave/config"
	"github.com/robmorgan/clave/playback"
	"github.com/robmorgan/clave/rhythm"
)

type step int

const (
	stepBeats step = iota
	stepTempo
	stepGrouping
	stepRunning
	stepStopping
)

// Model walks the user through bar length, tempo and grouping, plays the
// session and comes back to the first prompt when it is stopped.
type Model struct {
	cfg        config.ClaveConfig
	controller *playback.Controller

	step     step
	input    textinput.Model
	spinner  spinner.Model
	styles   styles
	err      error
	quitting bool

	// choices for the session being set up
	beatsInBar int
	tempo      int
	choices    []rhythm.Grouping
	cursor     int

	// the running session
	session  *playback.Session
	beats    chan beatMsg
	position rhythm.Position
	accent   rhythm.Accent
}

// NewModel creates the interactive controller. Sessions are started on
// controller, which must not be used by anyone else while the program runs.
func NewModel(cfg config.ClaveConfig, controller *playback.Controller) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		cfg:        cfg,
		controller: controller,
		input:      newInput(),
		spinner:    s,
		styles:     newStyles(),
	}
	m.spinner.Style = m.styles.spinner
	return m
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 4
	ti.Width = 8
	ti.Focus()
	return ti
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

type beatMsg struct {
	position rhythm.Position
	accent   rhythm.Accent
}

type sessionStoppedMsg struct {
	err error
}

// observe forwards beats to the UI without ever blocking the playback worker;
// a beat the UI has not picked up yet is replaced by the newer one.
func observe(ch chan beatMsg) playback.BeatObserver {
	return func(pos rhythm.Position, accent rhythm.Accent) {
		msg := beatMsg{position: pos, accent: accent}
		select {
		case ch <- msg:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- msg:
			default:
			}
		}
	}
}

func listenForBeats(ch chan beatMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// waitForSession joins the worker. The beat channel is closed once the
// worker has exited so the listener stops too.
func waitForSession(s *playback.Session, ch chan beatMsg) tea.Cmd {
	return func() tea.Msg {
		err := s.Wait()
		close(ch)
		return sessionStoppedMsg{err: err}
	}
}
