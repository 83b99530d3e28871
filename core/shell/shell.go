// Package shell implements the interactive read, tokenize, dispatch and
// execute loop.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/josephlewis42/myshell/core/logger"
)

const (
	// Name is used to attribute diagnostics written to stderr.
	Name = "myshell"

	DefaultPrompt = "myshell> "
)

// Continuation tells the driving loop whether to read another line.
type Continuation int

const (
	Stop     Continuation = 0
	Continue Continuation = 1
)

// EventRecorder stores events about executed commands.
type EventRecorder interface {
	Record(event logger.LogType) error
}

type nopRecorder struct{}

func (nopRecorder) Record(logger.LogType) error { return nil }

// FatalError is returned by Run when the shell can no longer trust its own
// input state.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %v", e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

type Shell struct {
	reader LineReader

	// Stdin is handed to child processes, nil means the null device.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	prompt      string
	colorPrompt bool
	maxLine     int

	log    *log.Logger
	events EventRecorder
}

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt sets the prompt printed before each read.
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// WithColorPrompt renders the prompt in bold green.
func WithColorPrompt(enabled bool) Option {
	return func(s *Shell) {
		s.colorPrompt = enabled
	}
}

// WithLineReader replaces the default stream reader, e.g. with a
// TerminalReader.
func WithLineReader(r LineReader) Option {
	return func(s *Shell) {
		s.reader = r
	}
}

// WithMaxLineLength bounds the line buffer, 0 means unbounded.
func WithMaxLineLength(n int) Option {
	return func(s *Shell) {
		s.maxLine = n
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Shell) {
		s.log = l
	}
}

// WithEventRecorder sets where command events are recorded.
func WithEventRecorder(r EventRecorder) Option {
	return func(s *Shell) {
		s.events = r
	}
}

// New creates a shell reading commands from in. Children only inherit in
// when it is a file; any other reader is owned by the line reader.
func New(in io.Reader, out, errw io.Writer, opts ...Option) *Shell {
	s := &Shell{
		Stdout: out,
		Stderr: errw,
		prompt: DefaultPrompt,
		log:    log.New(io.Discard),
		events: nopRecorder{},
	}

	if f, ok := in.(*os.File); ok {
		s.Stdin = f
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.reader == nil {
		s.reader = NewStreamReader(in, out, s.maxLine)
	}

	return s
}

func (s *Shell) promptString() string {
	if !s.colorPrompt {
		return s.prompt
	}

	c := color.New(color.FgGreen, color.Bold)
	c.EnableColor()
	return c.Sprint(s.prompt)
}

// Run drives the loop until a command returns Stop or input ends. Errors are
// only returned for fatal reader failures, which are also reported on
// stderr.
func (s *Shell) Run() error {
	for {
		line, err := s.reader.ReadLine(s.promptString())
		switch {
		case errors.Is(err, io.EOF):
			s.log.Debug("input closed")
			return nil
		case errors.Is(err, ErrLineTooLong):
			s.errorf("buffer re-allocation error: %v", err)
			return &FatalError{Err: err}
		case err != nil:
			s.errorf("read error: %v", err)
			return &FatalError{Err: err}
		}

		if s.Execute(Tokenize(line)) == Stop {
			return nil
		}
	}
}

// RunCommand executes a single line as if it had been typed at the prompt.
func (s *Shell) RunCommand(line string) Continuation {
	return s.Execute(Tokenize(line))
}

// Execute dispatches a token sequence to a builtin or an external program.
func (s *Shell) Execute(args []string) Continuation {
	if len(args) == 0 {
		return Continue
	}

	if builtin, ok := lookupBuiltin(args[0]); ok {
		s.log.Debug("dispatch", "builtin", args[0])
		s.record(&logger.Builtin{Command: args})
		return builtin.Main(s, args)
	}

	return s.launch(args)
}

func (s *Shell) errorf(format string, args ...interface{}) {
	fmt.Fprintf(s.Stderr, Name+": "+format+"\n", args...)
}

func (s *Shell) record(event logger.LogType) {
	if err := s.events.Record(event); err != nil {
		s.log.Warn("couldn't record event", "err", err)
	}
}
