package schema

import (
	"log/slog"

	"github.com/leapstack-labs/leapgql/pkg/core"
)

// Observer receives progress notifications from a Deserializer.
// Implementations must be safe for concurrent use.
type Observer interface {
	// FileStarted is called before a document is deserialized.
	FileStarted(path string)
	// ModelProduced is called for each model of a successfully deserialized document.
	ModelProduced(path string, model core.Model)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

// FileStarted implements Observer.
func (NopObserver) FileStarted(string) {}

// ModelProduced implements Observer.
func (NopObserver) ModelProduced(string, core.Model) {}

// LogObserver reports progress through a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an observer logging at debug level.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

// FileStarted implements Observer.
func (o *LogObserver) FileStarted(path string) {
	o.logger.Debug("deserializing document", "path", path)
}

// ModelProduced implements Observer.
func (o *LogObserver) ModelProduced(path string, model core.Model) {
	o.logger.Debug("model produced",
		"path", path,
		"model", model.Name,
		"source", model.Source,
		"fields", len(model.Fields))
}
