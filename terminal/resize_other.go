//go:build !unix

package terminal

// Stub watcher for platforms without SIGWINCH support.
type resizeWatcher struct{}

func newResizeWatcher(fd int) *resizeWatcher { return &resizeWatcher{} }

func (r *resizeWatcher) start() {}
func (r *resizeWatcher) stop()  {}

func (r *resizeWatcher) size() (int, int, bool) { return 0, 0, false }

func getTerminalSize(fd int) (int, int) {
	return 80, 24
}
