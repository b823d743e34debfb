package shaders

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/logger"
)

// Watcher reports edits to the shader files of a directory. Changes are
// delivered on a buffered channel that the main loop drains; bursts of
// writes collapse into one pending notification.
type Watcher struct {
	fs      *fsnotify.Watcher
	changed chan string
	done    chan struct{}
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsWatch.Add(dir); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		fs:      fsWatch,
		changed: make(chan string, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changed delivers the path of an edited shader file.
func (w *Watcher) Changed() <-chan string { return w.changed }

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 || !isShaderFile(e.Name) {
				continue
			}
			select {
			case w.changed <- e.Name:
			default:
				// A reload is already pending.
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("shader watcher error", zap.Error(err))

		case <-w.done:
			return
		}
	}
}

func isShaderFile(path string) bool {
	base := filepath.Base(path)
	return base == VertexFile || base == FragmentFile
}
