//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
)

// resizeWatcher tracks the terminal size through SIGWINCH.
type resizeWatcher struct {
	fd     int
	sigCh  chan os.Signal
	stopCh chan struct{}
	doneCh chan struct{}

	// packed as width<<32 | height; zero until first measurement
	dims atomic.Uint64
}

func newResizeWatcher(fd int) *resizeWatcher {
	return &resizeWatcher{
		fd:     fd,
		sigCh:  make(chan os.Signal, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (r *resizeWatcher) start() {
	r.measure()
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	go r.watchLoop()
}

func (r *resizeWatcher) stop() {
	signal.Stop(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
}

func (r *resizeWatcher) watchLoop() {
	defer close(r.doneCh)
	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			r.measure()
		}
	}
}

func (r *resizeWatcher) measure() {
	ws, err := unix.IoctlGetWinsize(r.fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return
	}
	r.dims.Store(uint64(ws.Col)<<32 | uint64(ws.Row))
}

func (r *resizeWatcher) size() (width, height int, ok bool) {
	d := r.dims.Load()
	if d == 0 {
		return 0, 0, false
	}
	return int(d >> 32), int(d & 0xffffffff), true
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}
