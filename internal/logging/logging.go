package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
)

var (
	logfile *os.File
	verbose bool
	filelog = zerolog.Nop()

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Init opens the append-only log under the user config dir.
func Init() {
	dir, _ := os.UserConfigDir()
	_ = InitFile(filepath.Join(dir, "mediasearch", "logs", "mediasearch.log"))
}

// InitFile mirrors every console message into path as JSON lines.
func InitFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	Close()
	logfile = f
	zerolog.TimeFieldFormat = time.RFC3339
	filelog = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
	filelog = zerolog.Nop()
}

// Logger exposes the file logger for callers that want structured fields.
func Logger() *zerolog.Logger { return &filelog }

func Info(msg string) {
	_, _ = fmt.Fprintln(stdout, msg)
	filelog.Info().Msg(msg)
}

func Success(msg string) {
	_, _ = fmt.Fprintln(stdout, text.FgGreen.Sprint(msg))
	filelog.Info().Msg(msg)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(stderr, text.FgRed.Sprint(msg))
	filelog.Error().Msg(msg)
}

func Gray(msg string) {
	_, _ = fmt.Fprintln(stdout, text.FgHiBlack.Sprint(msg))
	filelog.Info().Msg(msg)
}

// SetVerbose toggles verbose output to stderr.
func SetVerbose(v bool) { verbose = v }

func Verbose() bool { return verbose }

// Debug prints only when verbose mode is enabled; the file log always records it.
func Debug(msg string) {
	filelog.Debug().Msg(msg)
	if !verbose {
		return
	}
	_, _ = fmt.Fprintln(stderr, text.FgHiBlack.Sprint(msg))
}
