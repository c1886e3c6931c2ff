// Package logging wires the stdlib logger and Bubble Tea's debug log to a
// shared file. Without a file, everything below Fatal is discarded so the
// TUI never fights the terminal for stdout.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var debugMode bool

// Setup configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func Setup(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	// configure stdlib logger
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// configure Bubble Tea logger
	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}

	debugMode = true

	// cleanup closes both files
	cleanup = func() {
		tf.Close()
		f.Close()
		debugMode = false
	}
	return cleanup, nil
}

// IsDebugMode reports whether a debug log file is active.
func IsDebugMode() bool { return debugMode }

// Debugf logs a formatted message when a debug file is active.
func Debugf(format string, args ...any) {
	if debugMode {
		log.Output(2, "DEBUG "+fmt.Sprintf(format, args...))
	}
}

// Infof logs regardless of debug mode (the writer decides where it lands).
func Infof(format string, args ...any) {
	log.Output(2, "INFO "+fmt.Sprintf(format, args...))
}

// Warnf logs regardless of debug mode (the writer decides where it lands).
func Warnf(format string, args ...any) {
	log.Output(2, "WARN "+fmt.Sprintf(format, args...))
}
