package observability

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

// NewLogger builds a logger from a level name and a format ("text" or "json").
func NewLogger(level, format string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q: must be text or json", format)
	}

	return logger, nil
}

// WithLogger stores a request-scoped entry in the context.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, entry)
}

// FromContext returns the request-scoped entry, or an entry on the standard
// logger when none was attached.
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		switch v := ctx.Value(loggerKey{}).(type) {
		case *logrus.Entry:
			return v
		case *logrus.Logger:
			return logrus.NewEntry(v)
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
