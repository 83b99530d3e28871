package shell

import (
	"io"

	"github.com/abiosoft/readline"
)

// TerminalReader reads lines from an interactive terminal with line editing
// and history.
type TerminalReader struct {
	Readline *readline.Instance
}

var _ LineReader = (*TerminalReader)(nil)

// NewTerminalReader creates a readline backed reader on the process
// terminal. History is persisted to historyFile when it is non-empty.
func NewTerminalReader(historyFile string) (*TerminalReader, error) {
	cfg := &readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &TerminalReader{Readline: rl}, nil
}

func (t *TerminalReader) ReadLine(prompt string) (string, error) {
	t.Readline.SetPrompt(prompt)
	line, err := t.Readline.Readline()

	switch {
	case err == readline.ErrInterrupt:
		// Interrupt clears the line.
		return "", nil
	case err == io.EOF:
		return "", io.EOF
	case err != nil:
		return "", err
	}

	return line, nil
}

// Close restores the terminal state.
func (t *TerminalReader) Close() error {
	return t.Readline.Close()
}
