package imageio

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher signals when the watched file is written or replaced. The parent
// directory is watched because editors often save by rename.
type Watcher struct {
	fs      *fsnotify.Watcher
	path    string
	changed chan struct{}
	done    chan struct{}
	log     zerolog.Logger
}

func Watch(path string, log zerolog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fs:      fw,
		path:    abs,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
		log:     log,
	}
	go w.run()
	return w, nil
}

// Changed delivers at most one pending notification; bursts coalesce.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.log.Trace().Str("op", ev.Op.String()).Msg("image changed")
			select {
			case w.changed <- struct{}{}:
			default:
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}
