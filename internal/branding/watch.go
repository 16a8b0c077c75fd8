package branding

import (
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"shopfront/internal/debounce"
)

// reloadWindow collapses the burst of write events editors and
// atomic-save tools emit for a single file change.
const reloadWindow = 500 * time.Millisecond

// Watch reloads the provider whenever the branding file changes. It
// returns a stop function. A reload that fails validation keeps the
// previous document in place.
func Watch(path string, provider *Provider, logger *zap.SugaredLogger) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	reload := debounce.New(reloadWindow, func(string) {
		b, err := Load(path)
		if err != nil {
			logger.Errorw("branding reload failed, keeping previous document", "path", path, "error", err)
			return
		}
		provider.Replace(b)
		logger.Infow("branding reloaded", "path", path, "site", b.SiteName)
	})

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					reload.Set(event.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Errorw("branding watcher error", "error", err)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		reload.Stop()
		watcher.Close()
	}, nil
}
