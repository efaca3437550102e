package utils

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Log levels accepted by Config.LogLevel
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// ParseLevel maps a level name to the go-kit filter that allows it and everything above
func ParseLevel(name string) (level.Option, error) {
	switch name {
	case LevelDebug:
		return level.AllowDebug(), nil
	case LevelInfo:
		return level.AllowInfo(), nil
	case LevelWarn:
		return level.AllowWarn(), nil
	case LevelError:
		return level.AllowError(), nil
	}
	return nil, errors.Errorf("[ParseLevel] unknown log level %q", name)
}

// NewLogger returns a logfmt logger writing to w, filtered at levelName
func NewLogger(w io.Writer, levelName string) (log.Logger, error) {
	allow, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}
