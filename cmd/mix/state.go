package main

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mix-lang/mix/internal/project"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	verbose bool
	noColor bool
}

// globalState carries everything the commands would otherwise read from
// the process: filesystem, environment, terminals and exit.
type globalState struct {
	ctx context.Context

	fs  afero.Fs
	env map[string]string

	stdOut, stdErr *consoleWriter
	logger         *logrus.Logger

	flags globalFlags
	// envConf holds the MIX_* settings, read before any command runs.
	envConf project.Config

	osExit func(int)
}

func newGlobalState(ctx context.Context) *globalState {
	isDumbTerm := os.Getenv("TERM") == "dumb"
	stdoutTTY := !isDumbTerm && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	stderrTTY := !isDumbTerm && (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))

	outMutex := &sync.Mutex{}
	stdOut := &consoleWriter{Writer: colorable.NewColorableStdout(), isTTY: stdoutTTY, mu: outMutex}
	stdErr := &consoleWriter{Writer: colorable.NewColorableStderr(), isTTY: stderrTTY, mu: outMutex}

	logger := &logrus.Logger{
		Out:       stdErr,
		Formatter: &logrus.TextFormatter{ForceColors: stderrTTY, DisableTimestamp: true},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}

	return &globalState{
		ctx:     ctx,
		fs:      afero.NewOsFs(),
		env:     buildEnvMap(os.Environ()),
		stdOut:  stdOut,
		stdErr:  stdErr,
		logger:  logger,
		envConf: project.NewConfig(),
		osExit:  os.Exit,
	}
}

func buildEnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}

// consoleWriter serializes writes to a terminal shared by stdout and stderr.
type consoleWriter struct {
	io.Writer
	isTTY bool
	mu    *sync.Mutex
}

func (w *consoleWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Writer.Write(p)
}

// colored reports whether colour escapes should be written to w.
func (gs *globalState) colored(w *consoleWriter) bool {
	return w.isTTY && !gs.flags.noColor
}

// color returns a colour for output written to w.
func (gs *globalState) color(w *consoleWriter, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if gs.colored(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
