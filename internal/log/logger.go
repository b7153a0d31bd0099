package log

import (
	"io"
	stdlog "log"
	"strings"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var (
	current Level = Info
	out           = stdlog.Default()
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "err", "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func SetLevel(l Level) { current = l }

func CurrentLevel() Level { return current }

// SetOutput leitet alle Log-Zeilen auf w um (CLI: stderr, Tests: Buffer).
func SetOutput(w io.Writer) {
	out = stdlog.New(w, "", stdlog.LstdFlags)
}

func Debugf(format string, v ...any) {
	if current <= Debug {
		out.Printf("[DEBUG] "+format, v...)
	}
}
func Infof(format string, v ...any) {
	if current <= Info {
		out.Printf("[INFO] "+format, v...)
	}
}
func Warnf(format string, v ...any) {
	if current <= Warn {
		out.Printf("[WARN] "+format, v...)
	}
}
func Errorf(format string, v ...any) {
	if current <= Error {
		out.Printf("[ERROR] "+format, v...)
	}
}

// Init setzt das Level aus der Konfiguration; leere Werte bedeuten Info.
func Init(level string) {
	SetLevel(ParseLevel(level))
}
