// Package logging is the application wide logger.
//
// InfoLog, WarnLog and ErrLog keep the familiar Printf/Println/Fatalf
// call style while writing leveled, timestamped lines through charmbracelet/log.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var base = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "pyramid",
	Level:           log.InfoLevel,
})

var (
	DebugLog = Logger{level: log.DebugLevel}
	InfoLog  = Logger{level: log.InfoLevel}
	WarnLog  = Logger{level: log.WarnLevel}
	ErrLog   = Logger{level: log.ErrorLevel}
)

// Logger writes at a fixed level through the shared base logger
type Logger struct {
	level log.Level
}

func (l Logger) Printf(format string, args ...any) {
	base.Log(l.level, strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

func (l Logger) Println(args ...any) {
	base.Log(l.level, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// With logs msg with structured key/value pairs.
func (l Logger) With(msg string, keyvals ...any) {
	base.Log(l.level, msg, keyvals...)
}

func (l Logger) Fatalf(format string, args ...any) {
	base.Fatal(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

func (l Logger) Fatalln(args ...any) {
	base.Fatal(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (l Logger) Panicf(format string, args ...any) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	base.Log(log.ErrorLevel, msg)
	panic(msg)
}

// SetLevel accepts debug, info, warn, error or fatal.
func SetLevel(level string) error {

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", level, err)
	}

	base.SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	base.SetOutput(w)
}
