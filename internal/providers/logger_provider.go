package providers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeRefresh
)

type Logger interface {
	Errorf(logType TypeEnum, format string, args ...interface{})
	Warnf(logType TypeEnum, format string, args ...interface{})
	Debugf(logType TypeEnum, format string, args ...interface{})
	Infof(logType TypeEnum, format string, args ...interface{})
	Fatalf(logType TypeEnum, format string, args ...interface{})
	Close()
}

var typeFiles = map[TypeEnum]string{
	TypeApp:     "app.log",
	TypeGet:     "get.log",
	TypePost:    "post.log",
	TypeRefresh: "refresh.log",
}

// LogProvider writes one zerolog stream per log type into the configured
// directory. In debug mode every stream is additionally mirrored to the
// console writer on stderr.
type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	lp := &LogProvider{loggers: make(map[TypeEnum]zerolog.Logger)}
	for logType, name := range typeFiles {
		path := filepath.Join(conf.Logger.Dir, name)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.FileMode(conf.Logger.Mode))
		if err != nil {
			lp.Close()
			return nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		lp.files = append(lp.files, file)

		var out io.Writer = file
		if conf.Debug {
			out = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		lp.loggers[logType] = zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	return lp, nil
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

func (lp *LogProvider) Errorf(logType TypeEnum, format string, args ...interface{}) {
	l := lp.loggers[logType]
	l.Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(logType TypeEnum, format string, args ...interface{}) {
	l := lp.loggers[logType]
	l.Warn().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(logType TypeEnum, format string, args ...interface{}) {
	l := lp.loggers[logType]
	l.Debug().Msgf(format, args...)
}

func (lp *LogProvider) Infof(logType TypeEnum, format string, args ...interface{}) {
	l := lp.loggers[logType]
	l.Info().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(logType TypeEnum, format string, args ...interface{}) {
	l := lp.loggers[logType]
	l.Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	for _, file := range lp.files {
		_ = file.Close()
	}
}
