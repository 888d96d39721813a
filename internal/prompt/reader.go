package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jwulff/memoexport/internal/export"
)

// ErrInterrupted is returned when the operator presses Ctrl+C at a prompt.
var ErrInterrupted = errors.New("interrupted by user")

// ErrInputClosed is returned when the input program has stopped.
var ErrInputClosed = errors.New("input closed")

// Reader implements export.KeyReader on a terminal. Keys are consumed one per
// ReadKey; anything typed ahead waits for the next prompt.
type Reader struct {
	in   io.Reader
	out  io.Writer
	opts []tea.ProgramOption

	startOnce sync.Once
	stopOnce  sync.Once
	program   *tea.Program
	events    chan keyEvent
	stop      chan struct{}
	done      chan struct{}
	runErr    error
}

// New returns a Reader that reads keys from in and writes prompts to out.
// Call Close when done.
func New(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *Reader {
	return &Reader{
		in:     in,
		out:    out,
		opts:   opts,
		events: make(chan keyEvent),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// start runs the input program. Without a renderer bubbletea leaves the
// terminal mode alone; ReadKey owns raw mode.
func (r *Reader) start() {
	opts := append([]tea.ProgramOption{
		tea.WithInput(r.in),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	}, r.opts...)
	r.program = tea.NewProgram(newModel(r.events, r.stop), opts...)

	go func() {
		defer close(r.done)
		_, r.runErr = r.program.Run()
	}()
}

// ReadKey writes prompt, leaving the cursor at the start of its line, and
// blocks for exactly one keystroke.
func (r *Reader) ReadKey(ctx context.Context, prompt string) (export.Key, error) {
	r.startOnce.Do(r.start)

	if _, err := fmt.Fprint(r.out, prompt+"\r"); err != nil {
		return export.KeyOther, fmt.Errorf("write prompt: %w", err)
	}

	restore, err := r.makeRaw()
	if err != nil {
		return export.KeyOther, fmt.Errorf("read key: %w", err)
	}
	defer restore()

	select {
	case ev := <-r.events:
		if ev.interrupted {
			return export.KeyOther, ErrInterrupted
		}
		return ev.key, nil
	case <-ctx.Done():
		return export.KeyOther, fmt.Errorf("%w: %v", ErrInterrupted, ctx.Err())
	case <-r.done:
		if r.runErr != nil {
			return export.KeyOther, fmt.Errorf("read key: %w", r.runErr)
		}
		return export.KeyOther, fmt.Errorf("read key: %w", ErrInputClosed)
	}
}

// makeRaw puts a terminal input into raw mode and returns the function that
// restores it. Non-terminal input is left as is.
func (r *Reader) makeRaw() (func(), error) {
	f, ok := r.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}, nil
	}
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, state) }, nil
}

// Close stops the input program and waits for it to exit.
func (r *Reader) Close() error {
	r.stopOnce.Do(func() { close(r.stop) })
	if r.program == nil {
		return nil
	}
	r.program.Quit()
	<-r.done
	return nil
}
