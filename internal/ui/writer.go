// Package ui writes command output, paging long content when stdout is a
// terminal.
//
// The pager runs whatever command the user configured (like git or man do),
// so only configure pagers you trust.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/shadeworks/shade/internal/domain"
)

const defaultPager = "less -FRSX"

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	isTerminal    func(io.Writer) bool
	runPager      func(name string, args []string, content string) error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager (--no-pager).
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithConfigGetter sets where the "pager" key is read from.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter sets the environment lookup used for $PAGER.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

var (
	defaultsMu  sync.RWMutex
	defaultOpts []WriterOption
)

// SetDefaultOptions sets options applied to every Writer created afterwards,
// before the options passed to NewWriter. main uses it for --no-pager.
func SetDefaultOptions(opts ...WriterOption) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultOpts = opts
}

// NewWriter creates a Writer on stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a Writer on out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:        out,
		envGetter:  os.Getenv,
		isTerminal: isTerminal,
		runPager:   execPager,
	}

	defaultsMu.RLock()
	defaults := defaultOpts
	defaultsMu.RUnlock()

	for _, opt := range defaults {
		opt(w)
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager if appropriate.
//
// Precedence:
//  1. --no-pager → direct output
//  2. output is not a TTY → direct output
//  3. config key "pager" ("cat" bypasses)
//  4. $PAGER ("cat" bypasses)
//  5. less -FRSX
func (w *Writer) Pager(content string) {
	if w.pagerDisabled || !w.isTerminal(w.out) {
		_, _ = fmt.Fprint(w.out, content)
		return
	}

	pager := defaultPager
	if w.configGetter != nil {
		if v, ok := w.configGetter("pager"); ok && strings.TrimSpace(v) != "" {
			pager = v
		} else if v := w.envGetter("PAGER"); v != "" {
			pager = v
		}
	} else if v := w.envGetter("PAGER"); v != "" {
		pager = v
	}

	parts := strings.Fields(pager)
	if len(parts) == 0 || parts[0] == "cat" {
		_, _ = fmt.Fprint(w.out, content)
		return
	}

	if err := w.runPager(parts[0], parts[1:], content); err != nil {
		_, _ = fmt.Fprint(w.out, content)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func execPager(name string, args []string, content string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

var _ domain.OutputWriter = (*Writer)(nil)
