package zerolog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/raykavin/plotspec/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures a logger built by New
type Options struct {
	Level      string // trace, debug, info, warn, error
	TimeLayout string // layout of the console timestamp
	Colored    bool   // colorize console output
	JSON       bool   // emit JSON lines instead of console text
}

// New creates a zerolog backed logger writing to w
func New(w io.Writer, opts Options) (*Adapter, error) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	if opts.Level == "" {
		opts.Level = zerolog.LevelInfoValue
	}
	level, err := logger.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if opts.TimeLayout == "" {
		opts.TimeLayout = time.DateTime
	}

	out := w
	if !opts.JSON {
		console := zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !opts.Colored,
			TimeFormat: opts.TimeLayout,
		}
		if opts.Colored {
			console.FormatLevel = formatLevel
			console.FormatMessage = formatMessage
			console.FormatCaller = formatCaller
			console.FormatTimestamp = func(i interface{}) string {
				return formatTimestamp(i, opts.TimeLayout)
			}
		}
		out = console
	}

	log := zerolog.New(out).
		Level(toZerologLevel(level)).
		With().
		Timestamp().
		Logger()

	return NewAdapter(&log), nil
}

func formatLevel(i interface{}) string {
	levelStr, ok := i.(string)
	if !ok {
		return "[UNK]"
	}

	switch levelStr {
	case zerolog.LevelTraceValue:
		return term.Cyanf("[TRC]")
	case zerolog.LevelDebugValue:
		return term.Cyanf("[DBG]")
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WAR]")
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return term.Redf("[ERR]")
	default:
		return term.Whitef("[UNK]")
	}
}

func formatMessage(i interface{}) string {
	const maxSize = 72

	msg, ok := i.(string)
	if !ok || len(msg) == 0 {
		return ">"
	}

	if len(msg) > maxSize {
		msg = msg[:maxSize]
	} else {
		msg += strings.Repeat(" ", maxSize-len(msg))
	}

	return term.Whitef("> %s", msg)
}

func formatCaller(i interface{}) string {
	fname, ok := i.(string)
	if !ok || len(fname) == 0 {
		return ""
	}
	return term.Yellowf("[%s]", filepath.Base(fname))
}

func formatTimestamp(i interface{}, timeLayout string) string {
	strTime, ok := i.(string)
	if !ok {
		return term.Cyanf("[%s]", fmt.Sprint(i))
	}

	if ts, err := time.Parse(time.RFC3339, strTime); err == nil {
		strTime = ts.In(time.Local).Format(timeLayout)
	}

	return term.Cyanf("[%s]", strTime)
}
