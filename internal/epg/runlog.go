package epg

import (
	"fmt"
	"time"

	"github.com/Kopaev/Turksat-42e-RUS/internal/models"
	"github.com/Kopaev/Turksat-42e-RUS/internal/providers"
)

// RunLog collects the ordered, leveled trace of one refresh run. Entries
// are returned to the caller wholesale when the run finishes; each line
// is mirrored to the process logger as it happens.
type RunLog struct {
	entries []models.LogEntry
	logger  providers.Logger
	now     func() time.Time
}

func NewRunLog(logger providers.Logger) *RunLog {
	return &RunLog{logger: logger, now: time.Now}
}

func (l *RunLog) add(level, format string, args ...interface{}) {
	l.entries = append(l.entries, models.LogEntry{
		Time:  l.now().Format("15:04:05"),
		Msg:   fmt.Sprintf(format, args...),
		Level: level,
	})
}

func (l *RunLog) Infof(format string, args ...interface{}) {
	l.add("info", format, args...)
	l.logger.Infof(providers.TypeRefresh, format, args...)
}

func (l *RunLog) Warnf(format string, args ...interface{}) {
	l.add("warn", format, args...)
	l.logger.Warnf(providers.TypeRefresh, format, args...)
}

func (l *RunLog) Errorf(format string, args ...interface{}) {
	l.add("error", format, args...)
	l.logger.Errorf(providers.TypeRefresh, format, args...)
}

func (l *RunLog) Entries() []models.LogEntry {
	return l.entries
}
