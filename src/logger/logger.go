// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/gc"
)

// Logger is the logging surface shared by the CLI and the [MCP] server.
// The CLI implementation writes human-readable lines, the server
// implementation structured JSON, so callers switch modes without
// changing call sites.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Errorf formats and prints a diagnostic message. Implementations
	// keep diagnostics separate from extraction output so field values
	// printed to stdout stay clean for piping.
	Errorf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable
// formatting. Normal messages go to stdout and diagnostics to stderr, so
// a piped `--field serial` still receives only the serial bytes.
type CLILogger struct {
	out *log.Logger
	err *log.Logger
}

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	return &CLILogger{
		out: log.New(os.Stdout, "", 0),
		err: log.New(os.Stderr, "", 0),
	}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.out.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.out.Println(v...) }

// Errorf formats and prints a diagnostic on the error stream.
func (c *CLILogger) Errorf(format string, v ...any) { c.err.Printf(format, v...) }

// SetOutput sets the output destination for normal messages.
func (c *CLILogger) SetOutput(w io.Writer) { c.out.SetOutput(w) }

// SetErrorOutput sets the output destination for diagnostics.
func (c *CLILogger) SetErrorOutput(w io.Writer) { c.err.SetOutput(w) }

// logEntry is the wire shape of one structured log line.
type logEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// MCPLogger implements Logger for [MCP] server mode with one JSON object
// per line. Since the protocol owns stdout, the logger is silent unless a
// separate destination such as stderr or a file is provided.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewMCPLogger creates a structured logger for server mode. Pass
// silent=true to suppress output entirely; a nil writer falls back to
// io.Discard.
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{
		writer: writer,
		silent: silent,
	}
}

// emit encodes one structured line into a pooled scratch buffer and
// writes it out under the lock. Encode appends the trailing newline, so
// each entry lands on its own line.
func (m *MCPLogger) emit(level, msg string) {
	if m.silent {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(logEntry{Level: level, Message: msg}); err != nil {
		return
	}

	m.mu.Lock()
	m.writer.Write(buf.Bytes())
	m.mu.Unlock()
}

// Printf logs a formatted message at the info level.
func (m *MCPLogger) Printf(format string, v ...any) {
	m.emit("info", fmt.Sprintf(format, v...))
}

// Println logs a message at the info level.
func (m *MCPLogger) Println(v ...any) {
	m.emit("info", fmt.Sprint(v...))
}

// Errorf logs a formatted message at the error level.
func (m *MCPLogger) Errorf(format string, v ...any) {
	m.emit("error", fmt.Sprintf(format, v...))
}

// SetOutput swaps the log destination. A nil writer silences the logger
// without disabling it.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}
