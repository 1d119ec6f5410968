package shaders

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher collects the names of programs whose source files changed in a
// directory. GL objects may only be touched from the render thread, so the
// render loop polls Pending rather than being called back.
type Watcher struct {
	w     *fsnotify.Watcher
	mu    sync.Mutex
	dirty map[string]struct{}
	done  chan struct{}
}

func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watch %s", dir)
	}

	w := &Watcher{
		w:     fw,
		dirty: make(map[string]struct{}),
		done:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, ok := ProgramName(ev.Name)
			if !ok {
				continue
			}
			slog.Debug("shader changed", "file", ev.Name, "op", ev.Op.String())
			w.mu.Lock()
			w.dirty[name] = struct{}{}
			w.mu.Unlock()
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			slog.Warn("shader watcher", "err", err)
		}
	}
}

// Pending returns the programs changed since the last call, sorted by name.
func (w *Watcher) Pending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.dirty) == 0 {
		return nil
	}
	names := make([]string, 0, len(w.dirty))
	for name := range w.dirty {
		names = append(names, name)
	}
	clear(w.dirty)
	sort.Strings(names)
	return names
}

func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}
