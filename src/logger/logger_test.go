// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeEntry parses one structured log line and returns its level and message.
func decodeEntry(t *testing.T, line string) (level, message string) {
	t.Helper()

	var entry struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line is not valid JSON: %s", line)
	return entry.Level, entry.Message
}

// logLines splits captured output into individual non-empty lines.
func logLines(output string) []string {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}

func TestCLILogger(t *testing.T) {
	t.Run("printf and println reach the output stream", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewCLILogger()
		log.SetOutput(&buf)

		log.Printf("inspecting %s", "leaf.pem")
		log.Println("inspection", "done")

		assert.Contains(t, buf.String(), "inspecting leaf.pem")
		assert.Contains(t, buf.String(), "inspection done")
	})

	t.Run("diagnostics stay off the output stream", func(t *testing.T) {
		var out, errOut bytes.Buffer
		log := logger.NewCLILogger()
		log.SetOutput(&out)
		log.SetErrorOutput(&errOut)

		log.Printf("serial: %s", "00deadbeef")
		log.Errorf("field %q not present", "notafter")

		assert.Contains(t, out.String(), "00deadbeef", "field value belongs on the output stream")
		assert.NotContains(t, out.String(), "not present", "diagnostics must not leak into piped output")
		assert.Contains(t, errOut.String(), `field "notafter" not present`)
	})

	t.Run("set output redirects later messages", func(t *testing.T) {
		var first, second bytes.Buffer
		log := logger.NewCLILogger()

		log.SetOutput(&first)
		log.Println("one")
		log.SetOutput(&second)
		log.Println("two")

		assert.Contains(t, first.String(), "one")
		assert.NotContains(t, first.String(), "two")
		assert.Contains(t, second.String(), "two")
	})

	t.Run("concurrent printf keeps lines whole", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewCLILogger()
		log.SetOutput(&buf)

		const writers = 100
		const perWriter = 10

		var wg sync.WaitGroup
		wg.Add(writers)
		for i := range writers {
			go func(id int) {
				defer wg.Done()
				for j := range perWriter {
					log.Printf("writer %d line %d", id, j)
				}
			}(i)
		}
		wg.Wait()

		assert.Len(t, logLines(buf.String()), writers*perWriter)
	})
}

func TestMCPLogger(t *testing.T) {
	t.Run("silent mode writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewMCPLogger(&buf, true)

		for i := range 100 {
			log.Printf("inspect %d", i)
			log.Println("done", i)
			log.Errorf("failed %d", i)
		}

		assert.Zero(t, buf.Len())
	})

	t.Run("printf logs info as JSON", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewMCPLogger(&buf, false)

		log.Printf("parsed %d certificates", 3)

		level, message := decodeEntry(t, strings.TrimSpace(buf.String()))
		assert.Equal(t, "info", level)
		assert.Equal(t, "parsed 3 certificates", message)
	})

	t.Run("println logs info as JSON", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewMCPLogger(&buf, false)

		log.Println("server ready")

		level, message := decodeEntry(t, strings.TrimSpace(buf.String()))
		assert.Equal(t, "info", level)
		assert.Equal(t, "server ready", message)
	})

	t.Run("errorf logs at the error level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewMCPLogger(&buf, false)

		log.Errorf("connect to %s failed", "example.com:443")

		level, message := decodeEntry(t, strings.TrimSpace(buf.String()))
		assert.Equal(t, "error", level)
		assert.Equal(t, "connect to example.com:443 failed", message)
	})

	t.Run("set output redirects and nil silences", func(t *testing.T) {
		var first, second bytes.Buffer
		log := logger.NewMCPLogger(&first, false)

		log.Println("one")
		log.SetOutput(&second)
		log.Println("two")
		log.SetOutput(nil)
		log.Println("three")

		assert.Contains(t, first.String(), "one")
		assert.NotContains(t, first.String(), "two")
		assert.Contains(t, second.String(), "two")
		assert.NotContains(t, second.String(), "three")
	})

	t.Run("nil writer never panics", func(t *testing.T) {
		log := logger.NewMCPLogger(nil, false)

		log.Printf("dropped")
		log.Println("dropped")
		log.Errorf("dropped")
	})

	t.Run("each call emits exactly one line", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewMCPLogger(&buf, false)

		log.Printf("first %d", 1)
		log.Printf("second %d", 2)
		log.Println("third")

		lines := logLines(buf.String())
		require.Len(t, lines, 3)
		for _, line := range lines {
			decodeEntry(t, line)
		}
	})

	t.Run("messages with JSON metacharacters roundtrip unchanged", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewMCPLogger(&buf, false)

		inputs := []string{
			`path "C:\certs\leaf.pem"`,
			"line one\nline two",
			"col1\tcol2",
			"bell\x07control\x1f",
			"CN=Ex\\,ample",
			`mixed"quote\back` + "\nnewline\ttab",
		}
		for _, input := range inputs {
			buf.Reset()
			log.Printf("%s", input)

			_, message := decodeEntry(t, strings.TrimSpace(buf.String()))
			assert.Equal(t, input, message, "input %q must roundtrip unchanged", input)
		}
	})

	t.Run("println escapes like printf", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewMCPLogger(&buf, false)

		for _, input := range []string{`quote"test`, "newline\ntest", "tab\ttest", "control\x01test"} {
			buf.Reset()
			log.Println(input)

			_, message := decodeEntry(t, strings.TrimSpace(buf.String()))
			assert.Equal(t, input, message)
		}
	})
}

func TestMCPLoggerConcurrent(t *testing.T) {
	t.Run("parallel printf emits intact JSON lines", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewMCPLogger(&buf, false)

		const writers = 100
		const perWriter = 10

		var wg sync.WaitGroup
		wg.Add(writers)
		for i := range writers {
			go func(id int) {
				defer wg.Done()
				for j := range perWriter {
					log.Printf("writer %d line %d", id, j)
				}
			}(i)
		}
		wg.Wait()

		lines := logLines(buf.String())
		require.Len(t, lines, writers*perWriter)
		for _, line := range lines {
			level, message := decodeEntry(t, line)
			assert.Equal(t, "info", level)
			assert.Contains(t, message, "writer")
		}
	})

	t.Run("info and error levels interleave without loss", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewMCPLogger(&buf, false)

		const writers = 50
		const perWriter = 10

		var wg sync.WaitGroup
		wg.Add(writers * 2)
		for i := range writers {
			go func(id int) {
				defer wg.Done()
				for j := range perWriter {
					log.Printf("info %d %d", id, j)
				}
			}(i)
			go func(id int) {
				defer wg.Done()
				for j := range perWriter {
					log.Errorf("error %d %d", id, j)
				}
			}(i)
		}
		wg.Wait()

		var infoCount, errorCount int
		for _, line := range logLines(buf.String()) {
			switch level, _ := decodeEntry(t, line); level {
			case "info":
				infoCount++
			case "error":
				errorCount++
			}
		}
		assert.Equal(t, writers*perWriter, infoCount)
		assert.Equal(t, writers*perWriter, errorCount)
	})

	t.Run("swapping output mid-stream stays safe", func(t *testing.T) {
		var first, second bytes.Buffer
		log := logger.NewMCPLogger(&first, false)

		const writers = 10
		var wg sync.WaitGroup
		wg.Add(writers * 2)
		for i := range writers {
			go func(id int) {
				defer wg.Done()
				log.Printf("message %d", id)
			}(i)
			go func(id int) {
				defer wg.Done()
				if id == 5 {
					log.SetOutput(&second)
				}
			}(i)
		}
		wg.Wait()

		assert.NotZero(t, first.Len()+second.Len(), "expected output across the two buffers")
	})

	t.Run("silent mode under load", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewMCPLogger(&buf, true)

		const writers = 50
		var wg sync.WaitGroup
		wg.Add(writers)
		for i := range writers {
			go func(id int) {
				defer wg.Done()
				log.Printf("message %d", id)
				log.Println("message", id)
			}(i)
		}
		wg.Wait()

		assert.Zero(t, buf.Len())
	})
}

func TestMCPLoggerFile(t *testing.T) {
	t.Run("sequential entries land in order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inspector.log")
		file, err := os.Create(path)
		require.NoError(t, err)
		t.Cleanup(func() { file.Close() })

		log := logger.NewMCPLogger(file, false)
		log.Printf("inspect %s", "leaf.pem")
		log.Println("inspection done")
		log.Errorf("peer %s unreachable", "example.com:443")
		require.NoError(t, file.Sync())

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		lines := logLines(string(content))
		require.Len(t, lines, 3)

		level, message := decodeEntry(t, lines[0])
		assert.Equal(t, "info", level)
		assert.Equal(t, "inspect leaf.pem", message)

		_, message = decodeEntry(t, lines[1])
		assert.Equal(t, "inspection done", message)

		level, message = decodeEntry(t, lines[2])
		assert.Equal(t, "error", level)
		assert.Equal(t, "peer example.com:443 unreachable", message)
	})

	t.Run("concurrent writers share one file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inspector-concurrent.log")
		file, err := os.Create(path)
		require.NoError(t, err)
		t.Cleanup(func() { file.Close() })

		log := logger.NewMCPLogger(file, false)

		const writers = 50
		const perWriter = 10

		var wg sync.WaitGroup
		wg.Add(writers)
		for i := range writers {
			go func(id int) {
				defer wg.Done()
				for j := range perWriter {
					log.Printf("writer %d line %d", id, j)
				}
			}(i)
		}
		wg.Wait()
		require.NoError(t, file.Sync())

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		lines := logLines(string(content))
		require.Len(t, lines, writers*perWriter)
		for _, line := range lines {
			level, _ := decodeEntry(t, line)
			assert.Equal(t, "info", level)
		}
	})
}
