// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/version"
	"github.com/mark3labs/mcp-go/server"
)

var appVersion = version.Version // default version

// GetVersion reports the version string the server runs as. It starts at
// the version package default and follows whatever [Run] or [RunCLI] was
// last started with, so callers can reuse it for logging and handshakes.
func GetVersion() string {
	return appVersion
}

// Run serves the certificate inspection tools over stdio until the client
// disconnects or a SIGINT/SIGTERM arrives.
//
// The whole surface rides along: per-field extraction with caller-bounded
// buffers, distinguished name lookup and rendering, live peer fetching,
// OpenSSL version parsing, GREASE filtering, resource monitoring, the
// static resources, and the guided prompts. Configuration comes from the
// file named by MCP_INSPECTOR_CONFIG_FILE, or defaults when unset.
//
// A clean client disconnect returns nil. Signal-driven shutdown surfaces
// as a "server shutdown" error wrapping [context.Canceled].
func Run(version string) error {
	appVersion = version

	config, err := loadConfig(os.Getenv("MCP_INSPECTOR_CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Called once; the builder and the instruction template share the result
	tools, toolsWithConfig := createTools()

	instructions, err := loadInstructions(tools, toolsWithConfig)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Never unregistered: a signal landing after a clean disconnect must
	// still be swallowed instead of killing the process
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	s, err := NewServerBuilder().
		WithConfig(config).
		WithVersion(version).
		WithTools(tools...).
		WithToolsWithConfig(toolsWithConfig...).
		WithResources(createResources()...).
		WithPrompts(createPrompts()...).
		WithInstructions(instructions).
		WithPopulate().
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}

// RunCLI starts the gopls-style combined binary: running it without arguments
// serves the MCP protocol over stdio, while --instructions prints the
// inspection workflows and --help shows the generated usage text.
//
// RunCLI builds the same tool, resource, and prompt surface as Run, then hands
// it to the CLIFramework so that Cobra owns flag parsing and the default
// command starts the server. Configuration comes from the --config flag with
// the MCP_INSPECTOR_CONFIG_FILE environment variable as fallback.
func RunCLI(version string) error {
	appVersion = version

	tools, toolsWithConfig := createTools()

	instructions, err := loadInstructions(tools, toolsWithConfig)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	// Config is loaded at startup from the --config flag, not injected here
	deps := ServerDependencies{
		Embed:           templates.MagicEmbed,
		Version:         version,
		Tools:           tools,
		ToolsWithConfig: toolsWithConfig,
		Resources:       createResources(),
		Prompts:         createPrompts(),
		Instructions:    instructions,
		PopulateCache:   true,
	}

	framework := NewCLIFramework(os.Getenv("MCP_INSPECTOR_CONFIG_FILE"), deps)
	return framework.BuildRootCommand().Execute()
}
