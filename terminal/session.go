// Package terminal owns the shared terminal state for the duration of an
// animation: raw mode, the alternate screen buffer, cursor visibility, and
// auto-wrap. The session is acquired once at animation start and released on
// every exit path, including cancellation and panic.
package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Session is a scoped terminal resource. Open enters raw mode and the
// alternate screen; Close restores everything. Close is safe to call more
// than once.
type Session struct {
	in  *os.File
	out *os.File

	oldState *term.State
	resize   *resizeWatcher

	mu     sync.Mutex
	opened bool
	closed bool
}

// NewSession creates a session over stdin/stdout.
func NewSession() *Session {
	return &Session{in: os.Stdin, out: os.Stdout}
}

// Open enters raw mode (when stdin is a terminal), switches to the alternate
// screen, hides the cursor, and disables auto-wrap.
func (s *Session) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return nil
	}
	if !term.IsTerminal(int(s.out.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	// Raw mode stops echoed keystrokes from corrupting frames. Piped stdin
	// is fine; there is nothing to echo.
	if term.IsTerminal(int(s.in.Fd())) {
		old, err := term.MakeRaw(int(s.in.Fd()))
		if err != nil {
			return fmt.Errorf("enter raw mode: %w", err)
		}
		s.oldState = old
	}

	s.out.Write(csiAltScreenEnter)
	s.out.Write(csiCursorHide)
	s.out.Write(csiAutoWrapOff)
	s.out.Write(csiClear)

	s.resize = newResizeWatcher(int(s.out.Fd()))
	s.resize.start()

	s.opened = true
	return nil
}

// Close restores cursor visibility, auto-wrap, the main screen buffer,
// default attributes, and the saved termios state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened || s.closed {
		return
	}

	if s.resize != nil {
		s.resize.stop()
	}

	s.out.Write(csiCursorShow)
	s.out.Write(csiAltScreenExit)
	s.out.Write(csiAutoWrapOn)
	s.out.Write(csiSGR0)

	if s.oldState != nil {
		term.Restore(int(s.in.Fd()), s.oldState)
	}

	s.closed = true
}

// Size returns the current terminal dimensions, tracking resizes.
func (s *Session) Size() (width, height int) {
	if s.resize != nil {
		if w, h, ok := s.resize.size(); ok {
			return w, h
		}
	}
	return getTerminalSize(int(s.out.Fd()))
}

// Write passes frame bytes through to the terminal.
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// EmergencyReset attempts to restore the terminal to a sane state. Call from
// panic recovery when Close cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
