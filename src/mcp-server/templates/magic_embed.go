// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.md
var embeddedFS embed.FS

// EmbedFS is the read surface for the embedded template files. Abstracting
// [embed.FS] behind an interface lets tests substitute a fake filesystem
// when exercising template failure paths.
type EmbedFS interface {
	// ReadFile returns the contents of the named embedded file.
	ReadFile(name string) ([]byte, error)
	// ReadDir lists the entries of the named embedded directory.
	ReadDir(name string) ([]fs.DirEntry, error)
}

// embedFS adapts [embed.FS] to EmbedFS.
type embedFS struct{ fs embed.FS }

var _ EmbedFS = (*embedFS)(nil)

func (e *embedFS) ReadFile(name string) ([]byte, error) { return e.fs.ReadFile(name) }

func (e *embedFS) ReadDir(name string) ([]fs.DirEntry, error) { return e.fs.ReadDir(name) }

// MagicEmbed serves the markdown templates compiled into the binary: the
// certificate field reference, the CLI help text, and the MCP server
// instructions.
//
//	content, err := templates.MagicEmbed.ReadFile("field-reference.md")
//	if err != nil {
//		return fmt.Errorf("failed to read field reference: %w", err)
//	}
//
// Embedding keeps the binary self-contained across install methods, with
// a touch of magic ✨.
var MagicEmbed EmbedFS = &embedFS{fs: embeddedFS}
