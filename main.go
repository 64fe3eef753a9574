package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	arg "github.com/alexflint/go-arg"
	goerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/mattn/go-isatty"
	"github.com/robmorgan/clave/config"
	"github.com/robmorgan/clave/logger"
)

const (
	sinkDevice = "device"
	sinkNull   = "null"
)

type args struct {
	Tempo         int    `arg:"-t,--tempo" default:"120" help:"beats per minute"`
	Beats         int    `arg:"-b,--beats" default:"4" help:"beats in each bar"`
	Grouping      string `arg:"-g,--grouping" help:"grouping of the bar, e.g. 2,2,3 (default: no grouping)"`
	Config        string `arg:"-c,--config" help:"YAML file overriding the default voices and timing"`
	Sink          string `arg:"--sink" default:"device" help:"audio output: device or null"`
	Render        string `arg:"--render" placeholder:"FILE" help:"write the click track to a WAV file instead of playing it"`
	Bars          int    `arg:"--bars" default:"4" help:"number of bars to render"`
	ListGroupings bool   `arg:"--list-groupings" help:"print the groupings available for --beats and exit"`
	Headless      bool   `arg:"--headless" help:"play the flags' session without the interactive screen"`
	LogLevel      string `arg:"--log-level" help:"trace, debug, info, warn or error"`
	LogFile       string `arg:"--log-file" help:"append logs to this file"`
}

func (args) Description() string {
	return "clave is a terminal metronome that accents irregular groupings"
}

func main() {
	var a args
	p := arg.MustParse(&a)
	if err := a.validate(); err != nil {
		p.Fail(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, a); err != nil {
		logger.GetProjectLogger().Errorf("clave: %v", err)
		stop()
		os.Exit(1)
	}
}

func (a args) validate() error {
	if a.Sink != sinkDevice && a.Sink != sinkNull {
		return fmt.Errorf("--sink must be %q or %q", sinkDevice, sinkNull)
	}
	if a.Render != "" && a.Bars <= 0 {
		return fmt.Errorf("--bars must be positive")
	}
	return nil
}

func (a args) interactive() bool {
	if a.Headless || a.Render != "" || a.ListGroupings {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// Run loads the configuration and runs clave in the mode selected by a.
func Run(ctx context.Context, a args) error {
	cfg, err := config.LoadClaveConfig(a.Config)
	if err != nil {
		return err
	}

	closeLog, err := configureLogging(cfg, a)
	if err != nil {
		return err
	}
	defer closeLog()

	switch {
	case a.ListGroupings:
		return listGroupings(os.Stdout, cfg, a.Beats)
	case a.Render != "":
		return render(ctx, cfg, a)
	case a.interactive():
		return runInteractive(cfg, a)
	default:
		return runHeadless(ctx, cfg, a, os.Stdin)
	}
}

func configureLogging(cfg config.ClaveConfig, a args) (func(), error) {
	level := cfg.LogLevel
	if a.LogLevel != "" {
		level = a.LogLevel
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case a.LogFile != "":
		f, err := os.OpenFile(a.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, goerrors.WithStackTrace(err)
		}
		out = f
		closeLog = func() { f.Close() }
	case a.interactive():
		// the terminal belongs to the UI
		out = io.Discard
	}

	if err := logger.Configure(level, out); err != nil {
		closeLog()
		return nil, goerrors.WithStackTrace(err)
	}
	return closeLog, nil
}
