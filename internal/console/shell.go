// Package console runs the interactive phone book menu: a line-oriented
// read-eval loop over an io.Reader and io.Writer that dispatches each
// command to a book.Book.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/book"
)

// Prompts for the menus.
const (
	menuPrompt   = "\n[menu] Enter action (add, list, search, count, exit): "
	listPrompt   = "\n[list] Enter action ([number], back): "
	searchPrompt = "\n[search] Enter action ([number], back, again): "
	recordPrompt = "\n[record] Enter action (edit, delete, menu): "
	queryPrompt  = "Enter search query: "
)

// Shell is one interactive session over a Book.
type Shell struct {
	book   *book.Book
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Shell reading commands from in and writing to out.
func New(b *book.Book, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		book:   b,
		in:     bufio.NewReader(in),
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops over the top menu until "exit", the end of input, or ctx is
// cancelled. Unknown commands are ignored. It returns nil on exit or end of
// input, ctx.Err() on cancellation, and an error only if reading input fails.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.book.LoadError(); err != nil {
		s.printf("Error deserializing contacts: %v\n", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := s.prompt(menuPrompt)
		if err != nil {
			return s.finish(err)
		}

		switch action {
		case "add":
			err = s.add()
		case "list":
			err = s.list()
		case "search":
			err = s.search()
		case "count":
			s.println(s.book.CountMessage())
		case "exit":
			return nil
		default:
			s.logger.Debug("ignoring command", zap.String("input", action))
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

// finish maps the end of input to a clean stop.
func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// prompt writes text and reads one trimmed line of any length. A final line
// without a newline is still returned; io.EOF follows on the next call.
func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

// choose parses a 1-based selection among n items. It prints why a selection
// is rejected and reports whether it was accepted.
func (s *Shell) choose(input string, n int) (int, bool) {
	i, err := strconv.Atoi(input)
	if err != nil {
		s.println("Invalid input. Please enter a number.")
		return 0, false
	}
	if i < 1 || i > n {
		s.println("Invalid index.")
		return 0, false
	}
	return i, true
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
