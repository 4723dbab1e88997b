package starfield

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultReloadDebounce = 250 * time.Millisecond

// ConfigWatcher reloads a YAML config file when it changes on disk and
// publishes each valid result on Configs. Invalid files are logged and
// skipped; the previous config stays in effect.
type ConfigWatcher struct {
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	configs  chan Config
}

// NewConfigWatcher creates a watcher for the config file at path. The
// containing directory is watched so editors that replace the file on save
// are still picked up.
func NewConfigWatcher(logger *zap.Logger, path string) (*ConfigWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &ConfigWatcher{
		logger:   logger,
		watcher:  w,
		path:     abs,
		debounce: defaultReloadDebounce,
		configs:  make(chan Config, 1),
	}, nil
}

// Configs delivers reloaded configs. Only the latest pending config is kept.
func (cw *ConfigWatcher) Configs() <-chan Config {
	return cw.configs
}

// Start begins watching. The watch loop runs until ctx is cancelled or the
// watcher is stopped.
func (cw *ConfigWatcher) Start(ctx context.Context) error {
	dir := filepath.Dir(cw.path)
	if err := cw.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	cw.logger.Info("watching config", zap.String("path", cw.path))

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain the timer

	go func() {
		defer debounceTimer.Stop()
		for {
			select {
			case event, ok := <-cw.watcher.Events:
				if !ok {
					return
				}
				if cw.shouldProcessEvent(event) {
					cw.logger.Debug("config change detected",
						zap.String("file", event.Name),
						zap.String("op", event.Op.String()))
					debounceTimer.Reset(cw.debounce)
				}

			case err, ok := <-cw.watcher.Errors:
				if !ok {
					return
				}
				cw.logger.Error("watcher error", zap.Error(err))

			case <-debounceTimer.C:
				cw.reload()

			case <-ctx.Done():
				cw.logger.Info("stopping config watcher")
				return
			}
		}
	}()
	return nil
}

// Stop closes the underlying watcher.
func (cw *ConfigWatcher) Stop() error {
	return cw.watcher.Close()
}

// shouldProcessEvent reports whether event touches the watched file with a
// create, write or rename.
func (cw *ConfigWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Clean(event.Name) == cw.path
}

// reload parses the file and publishes it, replacing any unconsumed config.
func (cw *ConfigWatcher) reload() {
	cfg, err := LoadConfig(cw.path)
	if err != nil {
		cw.logger.Warn("config reload rejected", zap.Error(err))
		return
	}
	select {
	case <-cw.configs:
	default:
	}
	cw.configs <- cfg
	cw.logger.Info("config reloaded", zap.String("path", cw.path))
}
