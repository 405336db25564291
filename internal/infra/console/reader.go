// Package console reads command lines from a terminal or pipe.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/taskbot/internal/domain"
)

// Ensure Reader implements domain.LineSource.
var _ domain.LineSource = (*Reader)(nil)

// Reader yields trimmed lines from an io.Reader.
// An optional prompt is written before each line is read.
type Reader struct {
	scanner *bufio.Scanner
	prompt  io.Writer
	text    string
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// WithPrompt writes text to w before every read.
func (r *Reader) WithPrompt(w io.Writer, text string) *Reader {
	r.prompt = w
	r.text = text
	return r
}

// Next returns the next trimmed line, or io.EOF at end of input.
func (r *Reader) Next() (string, error) {
	if r.prompt != nil {
		if _, err := io.WriteString(r.prompt, r.text); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("scan input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}
