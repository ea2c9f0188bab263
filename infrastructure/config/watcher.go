package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 500 * time.Millisecond

// ConfigWatcher watches the configuration directory and reloads on change.
// Only the log level is applied live; other changes need a restart.
type ConfigWatcher struct {
	loader    *Loader
	config    *Config
	callbacks []func(*Config)
	mu        sync.RWMutex
	reloadMu  sync.Mutex
	logger    *zap.Logger
	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewConfigWatcher creates a watcher. File watching starts only when hot
// reload is enabled; otherwise the watcher just holds the initial config.
func NewConfigWatcher(loader *Loader, initial *Config, logger *zap.Logger) (*ConfigWatcher, error) {
	w := &ConfigWatcher{
		loader: loader,
		config: initial,
		logger: logger,
		stopCh: make(chan struct{}),
	}

	if !initial.Features.EnableHotReload {
		logger.Debug("Configuration hot reloading disabled",
			zap.String("environment", string(initial.Environment)),
		)
		return w, nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.watcher = fsWatcher

	if err := w.watchConfigDir(); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch config files: %w", err)
	}

	go w.watchLoop()

	logger.Info("Configuration hot reloading enabled",
		zap.String("environment", string(initial.Environment)),
		zap.String("configDir", loader.BasePath()),
	)

	return w, nil
}

// watchConfigDir watches the directory rather than single files so that
// editors that replace files on save are still seen.
func (w *ConfigWatcher) watchConfigDir() error {
	dir := w.loader.BasePath()

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			w.logger.Warn("Config directory does not exist, nothing to watch",
				zap.String("configDir", dir),
			)
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	return w.watcher.Add(dir)
}

func (w *ConfigWatcher) watchLoop() {
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !isConfigFile(event.Name) {
				continue
			}

			w.logger.Debug("Configuration file changed",
				zap.String("file", event.Name),
				zap.String("operation", event.Op.String()),
			)

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(reloadDebounce, w.reloadConfig)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return
		}
	}
}

// reloadConfig re-runs the loader. An invalid result keeps the previous config.
// Reloads are serialized: a debounce timer may fire while another reload runs.
func (w *ConfigWatcher) reloadConfig() {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	newConfig, err := w.loader.Load()
	if err != nil {
		w.logger.Error("Invalid configuration after reload, keeping previous", zap.Error(err))
		return
	}

	w.mu.Lock()
	oldConfig := w.config
	w.config = newConfig
	w.mu.Unlock()

	changes := diffConfigs(oldConfig, newConfig)
	if len(changes) == 0 {
		w.logger.Debug("Configuration unchanged after reload")
		return
	}

	w.logger.Info("Configuration reloaded", zap.Strings("changes", changes))
	w.notifyCallbacks(newConfig)
}

// OnChange registers a callback run after every effective reload
func (w *ConfigWatcher) OnChange(callback func(*Config)) {
	w.mu.Lock()
	w.callbacks = append(w.callbacks, callback)
	w.mu.Unlock()
}

// Stop stops watching. It is safe to call more than once.
func (w *ConfigWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		if w.watcher != nil {
			w.watcher.Close()
		}
	})
}

func (w *ConfigWatcher) notifyCallbacks(newConfig *Config) {
	w.mu.RLock()
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for i, callback := range callbacks {
		go func(idx int, cb func(*Config)) {
			defer func() {
				if r := recover(); r != nil {
					w.logger.Error("Config callback panicked",
						zap.Int("callbackIndex", idx),
						zap.Any("panic", r),
					)
				}
			}()

			cb(newConfig)
		}(i, callback)
	}
}

// diffConfigs describes the fields that differ between two configurations
func diffConfigs(old, new *Config) []string {
	var changes []string

	if old.Logging.Level != new.Logging.Level {
		changes = append(changes, fmt.Sprintf("logLevel: %s -> %s", old.Logging.Level, new.Logging.Level))
	}
	if old.Server.HTTPAddress != new.Server.HTTPAddress {
		changes = append(changes, fmt.Sprintf("httpAddress: %s -> %s (restart required)", old.Server.HTTPAddress, new.Server.HTTPAddress))
	}
	if old.Server.GRPCAddress != new.Server.GRPCAddress {
		changes = append(changes, fmt.Sprintf("grpcAddress: %s -> %s (restart required)", old.Server.GRPCAddress, new.Server.GRPCAddress))
	}
	if old.Dataset.Path != new.Dataset.Path {
		changes = append(changes, fmt.Sprintf("datasetPath: %q -> %q (restart required)", old.Dataset.Path, new.Dataset.Path))
	}
	if old.Features.EnableMetrics != new.Features.EnableMetrics {
		changes = append(changes, fmt.Sprintf("metrics: %v -> %v (restart required)", old.Features.EnableMetrics, new.Features.EnableMetrics))
	}

	return changes
}

func isConfigFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
