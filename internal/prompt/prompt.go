// Package prompt collects project parameters through sequential line prompts.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ngtw-dev/ngtw/internal/project"
)

// ErrClosed is returned when a released session is asked another question.
var ErrClosed = errors.New("prompt session is closed")

const (
	namePrompt  = "Enter the application name: "
	stylePrompt = "Enter your choice [1-4] (press Enter for CSS): "
	styleMenu   = `
Select stylesheet format:
  1) CSS (default)
  2) SCSS
  3) Sass
  4) Less
`
)

// Session is a line-oriented question channel over a reader and a writer.
// It does not own the underlying terminal: Close only releases the session so
// child processes can use the terminal afterwards.
type Session struct {
	reader *bufio.Reader
	w      io.Writer
}

// New opens a session that reads answers from r and writes questions to w.
func New(r io.Reader, w io.Writer) *Session {
	return &Session{reader: bufio.NewReader(r), w: w}
}

// Ask writes question and returns the submitted line without its newline.
// A final line terminated by end of input counts as submitted.
func (s *Session) Ask(question string) (string, error) {
	if s.reader == nil {
		return "", ErrClosed
	}
	fmt.Fprint(s.w, question)

	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Collect asks for the project name and stylesheet format. A blank name
// fails with project.ErrEmptyName before the stylesheet menu is shown.
func (s *Session) Collect() (project.Parameters, error) {
	name, err := s.Ask(namePrompt)
	if err != nil {
		return project.Parameters{}, fmt.Errorf("asking for application name: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		return project.Parameters{}, project.ErrEmptyName
	}

	fmt.Fprint(s.w, styleMenu)
	choice, err := s.Ask(stylePrompt)
	if err != nil {
		// Enter on a closed input still means "default".
		if !errors.Is(err, io.EOF) {
			return project.Parameters{}, fmt.Errorf("asking for stylesheet format: %w", err)
		}
		choice = ""
	}

	return project.NewParameters(name, project.ParseStyleChoice(choice))
}

// Close releases the session. It is safe to call more than once.
func (s *Session) Close() error {
	s.reader = nil
	return nil
}
