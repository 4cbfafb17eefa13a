package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmoose/multimacs/internal/engine/buffer"
	"github.com/dmoose/multimacs/internal/engine/killring"
)

// ScratchName is the name of the buffer created at startup.
const ScratchName = "*scratch*"

var (
	// ErrNoSuchBuffer is returned when a named buffer does not exist.
	ErrNoSuchBuffer = errors.New("editor: no such buffer")

	// ErrNoFileName is returned by file commands given no path.
	ErrNoFileName = errors.New("editor: no file name given")
)

// State is the editor-wide state: every open buffer, which one is
// current, the shared kill ring, and the message shown in the echo
// area. Single-threaded by construction; one command mutates it at a
// time.
type State struct {
	buffers []*buffer.Buffer
	current int
	kill    *killring.Ring
	message string

	undoLimit int
}

// Option configures a new State.
type Option func(*State)

// WithUndoLimit sets the undo log cap applied to every buffer the
// state creates.
func WithUndoLimit(n int) Option {
	return func(s *State) { s.undoLimit = n }
}

// NewState creates editor state owning the given kill ring, with a
// scratch buffer as the sole initial buffer.
func NewState(ring *killring.Ring, opts ...Option) *State {
	s := &State{kill: ring}
	for _, opt := range opts {
		opt(s)
	}
	s.buffers = []*buffer.Buffer{s.newBuffer(ScratchName)}
	return s
}

func (s *State) newBuffer(name string) *buffer.Buffer {
	if s.undoLimit > 0 {
		return buffer.New(name, buffer.WithUndoLimit(s.undoLimit))
	}
	return buffer.New(name)
}

// Kill returns the shared kill ring.
func (s *State) Kill() *killring.Ring { return s.kill }

// Current returns the buffer commands operate on.
func (s *State) Current() *buffer.Buffer {
	return s.buffers[s.current]
}

// Buffers returns the open buffers in creation order.
func (s *State) Buffers() []*buffer.Buffer {
	out := make([]*buffer.Buffer, len(s.buffers))
	copy(out, s.buffers)
	return out
}

// Find returns the buffer with the given name.
func (s *State) Find(name string) (*buffer.Buffer, bool) {
	for _, b := range s.buffers {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// Add registers a buffer and makes it current. A name collision gets a
// numeric suffix, Emacs style.
func (s *State) Add(b *buffer.Buffer) {
	b.SetName(s.uniqueName(b.Name()))
	s.buffers = append(s.buffers, b)
	s.current = len(s.buffers) - 1
}

func (s *State) uniqueName(base string) string {
	if _, ok := s.Find(base); !ok {
		return base
	}
	for i := 2; ; i++ {
		name := fmt.Sprintf("%s<%d>", base, i)
		if _, ok := s.Find(name); !ok {
			return name
		}
	}
}

// SwitchTo makes the named buffer current.
func (s *State) SwitchTo(name string) error {
	for i, b := range s.buffers {
		if b.Name() == name {
			s.current = i
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSuchBuffer, name)
}

// NextBuffer cycles to the next buffer in the list.
func (s *State) NextBuffer() {
	s.current = (s.current + 1) % len(s.buffers)
}

// KillBuffer closes the named buffer, or the current one when name is
// empty. Closing the last buffer replaces it with a fresh scratch
// buffer so there is always something current.
func (s *State) KillBuffer(name string) error {
	idx := s.current
	if name != "" {
		idx = -1
		for i, b := range s.buffers {
			if b.Name() == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrNoSuchBuffer, name)
		}
	}

	s.buffers = append(s.buffers[:idx], s.buffers[idx+1:]...)
	if len(s.buffers) == 0 {
		s.buffers = []*buffer.Buffer{s.newBuffer(ScratchName)}
	}
	if s.current >= len(s.buffers) {
		s.current = len(s.buffers) - 1
	} else if s.current > idx {
		s.current--
	}
	return nil
}

// FindFile visits path: switches to an existing buffer already
// visiting it, loads the file if it exists, or creates an empty buffer
// that will be written there on save.
func (s *State) FindFile(path string) error {
	if path == "" {
		return ErrNoFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	for i, b := range s.buffers {
		if b.Path() == abs {
			s.current = i
			return nil
		}
	}

	if _, err := os.Stat(abs); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		b := s.newBuffer(filepath.Base(abs))
		b.SetPath(abs)
		s.Add(b)
		return nil
	}

	var b *buffer.Buffer
	if s.undoLimit > 0 {
		b, err = buffer.FromFile(abs, buffer.WithUndoLimit(s.undoLimit))
	} else {
		b, err = buffer.FromFile(abs)
	}
	if err != nil {
		return err
	}
	s.Add(b)
	return nil
}

// SaveCurrent writes the current buffer back to its file.
func (s *State) SaveCurrent() error {
	return s.Current().Save()
}

// WriteCurrent writes the current buffer to path and makes the buffer
// visit it.
func (s *State) WriteCurrent(path string) error {
	if path == "" {
		return ErrNoFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return s.Current().SaveAs(abs)
}

// SetMessage formats a message for the echo area.
func (s *State) SetMessage(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
}

// Message returns the current echo-area message.
func (s *State) Message() string { return s.message }

// ClearMessage empties the echo area.
func (s *State) ClearMessage() { s.message = "" }
