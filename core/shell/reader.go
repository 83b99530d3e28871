package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	// lineBufferIncrement is both the initial capacity of a line buffer and
	// the amount it grows by when full.
	lineBufferIncrement = 1024
)

// ErrLineTooLong is returned when a line would outgrow the configured
// maximum length.
var ErrLineTooLong = errors.New("line exceeds maximum length")

// LineReader acquires one line of input after displaying a prompt.
type LineReader interface {
	// ReadLine returns the next line without its terminator. It returns
	// io.EOF once the input is exhausted.
	ReadLine(prompt string) (string, error)
}

// StreamReader reads lines one byte at a time from a non-interactive stream.
type StreamReader struct {
	in  *bufio.Reader
	out io.Writer
	max int
}

var _ LineReader = (*StreamReader)(nil)

// NewStreamReader creates a reader over in that writes prompts to out. Lines
// longer than max bytes fail with ErrLineTooLong, max <= 0 disables the
// limit.
func NewStreamReader(in io.Reader, out io.Writer, max int) *StreamReader {
	return &StreamReader{
		in:  bufio.NewReader(in),
		out: out,
		max: max,
	}
}

func (r *StreamReader) ReadLine(prompt string) (string, error) {
	if prompt != "" && r.out != nil {
		fmt.Fprint(r.out, prompt)
	}

	buffer := make([]byte, 0, lineBufferIncrement)
	for {
		b, err := r.in.ReadByte()
		switch {
		case err == io.EOF && len(buffer) == 0:
			return "", io.EOF
		case err == io.EOF:
			// Unterminated last line, the next call reports EOF.
			return string(buffer), nil
		case err != nil:
			return "", err
		case b == '\n':
			return string(buffer), nil
		}

		if r.max > 0 && len(buffer) >= r.max {
			return "", fmt.Errorf("%w: %d bytes", ErrLineTooLong, r.max)
		}
		if len(buffer) == cap(buffer) {
			buffer = grow(buffer)
		}
		buffer = append(buffer, b)
	}
}

// grow extends the buffer capacity by a fixed increment.
func grow(buffer []byte) []byte {
	grown := make([]byte, len(buffer), cap(buffer)+lineBufferIncrement)
	copy(grown, buffer)
	return grown
}
