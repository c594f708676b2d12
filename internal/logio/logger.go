package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Logger implements a leveled logging facility for the diagnostic stream.
// Lines are written like "LEVEL: message\n"; any logged error makes ExitCode
// non-zero.
type Logger struct {
	mu       sync.Mutex
	output   io.Writer
	colors   map[string]*color.Color
	buf      bytes.Buffer
	exitCode int
}

// levelColors decorates level prefixes when color is enabled.
var levelColors = map[string][]color.Attribute{
	"ERROR": {color.FgRed, color.Bold},
	"WARN":  {color.FgYellow},
	"TRACE": {color.FgCyan},
}

// SetOutput sets the logger's output stream.
func (log *Logger) SetOutput(out io.Writer) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.output = out
}

// SetColor enables or disables colored level prefixes, regardless of whether
// the output stream is a terminal.
func (log *Logger) SetColor(enabled bool) {
	log.mu.Lock()
	defer log.mu.Unlock()
	if !enabled {
		log.colors = nil
		return
	}
	log.colors = make(map[string]*color.Color, len(levelColors))
	for level, attrs := range levelColors {
		c := color.New(attrs...)
		c.EnableColor()
		log.colors[level] = c
	}
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics.
func (log *Logger) ExitCode() int {
	log.mu.Lock()
	defer log.mu.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.printf("ERROR", mess, args...)
	log.exitCode = 1
}

// Printf prints a line to the output stream like "level: message...\n".
// A failure to write to the output stream only affects ExitCode.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		return nil
	}
	if level != "" {
		if c := log.colors[level]; c != nil {
			c.Fprint(&log.buf, level)
		} else {
			log.buf.WriteString(level)
		}
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	log.buf.Reset()
	return err
}
