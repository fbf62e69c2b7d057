package store

import (
	"strings"

	badger "github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// badgerLogger routes badger's internal logging through zap.
type badgerLogger struct {
	s *zap.SugaredLogger
}

// NewBadgerLogger adapts a zap logger to badger's logging interface.
func NewBadgerLogger(l *zap.Logger) badger.Logger {
	return badgerLogger{s: l.Named("badger").Sugar()}
}

// Badger terminates its format strings with newlines; trim them so zap
// entries stay single-line.
func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.s.Errorf(strings.TrimSpace(format), args...)
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.s.Warnf(strings.TrimSpace(format), args...)
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.s.Infof(strings.TrimSpace(format), args...)
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.s.Debugf(strings.TrimSpace(format), args...)
}
