// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/template"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// cliHelpData carries the dynamic values substituted into the embedded
// cli_help.md template.
//
// Fields:
//   - ExeName: Executable name used in command examples
//   - InstructionsFlagName: Rendered instructions flag (e.g., "--instructions")
//   - ConfigFlagName: Rendered config flag (e.g., "--config")
//   - HelpFlagName: Rendered help flag (e.g., "--help")
type cliHelpData struct {
	ExeName              string
	InstructionsFlagName string
	ConfigFlagName       string
	HelpFlagName         string
}

// CLIFramework wraps the MCP server in a Cobra command so the same binary
// serves both roles: run it bare and it speaks MCP over stdio, run it with
// flags and it behaves like a normal CLI tool.
//
// Behavior:
//   - The command name follows the actual binary path rather than a
//     hardcoded string
//   - A [gopls-style] --instructions flag prints the inspection workflows
//     and exits
//   - --config selects the server configuration file, with the
//     MCP_INSPECTOR_CONFIG_FILE environment variable as fallback
//   - SIGINT and SIGTERM shut the server down cleanly
//
// Fields:
//   - configFile: Configuration file path from the --config flag, empty for
//     the environment variable fallback
//   - embed: Embedded filesystem holding the CLI help template
//   - version: Version string reported by --version
//   - tools, toolsWithConfig: Tool definitions passed through to the builder
//   - resources, prompts: Resource and prompt definitions passed through
//   - instructions: Rendered instruction text, shared by --instructions and
//     the MCP initialization handshake
//   - populateCache: Whether Build records the capability snapshot for the
//     version resource
//
// [gopls-style]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
type CLIFramework struct {
	configFile      string
	embed           templates.EmbedFS
	version         string
	tools           []ToolDefinition
	toolsWithConfig []ToolDefinitionWithConfig
	resources       []server.ServerResource
	prompts         []server.ServerPrompt
	instructions    string
	populateCache   bool
}

// NewCLIFramework creates a CLI framework from the given configuration file
// path and server dependencies. Configuration loading is deferred until the
// server actually starts, so the --config flag can still override the path.
//
// Parameters:
//   - configFile: Configuration file path, or empty to rely on the
//     MCP_INSPECTOR_CONFIG_FILE environment variable
//   - deps: Server dependencies consumed when the MCP server is built
//
// Returns:
//   - *CLIFramework: Framework ready for BuildRootCommand
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	return &CLIFramework{
		configFile:      configFile,
		embed:           deps.Embed,
		version:         deps.Version,
		tools:           deps.Tools,
		toolsWithConfig: deps.ToolsWithConfig,
		resources:       deps.Resources,
		prompts:         deps.Prompts,
		instructions:    deps.Instructions,
		populateCache:   deps.PopulateCache,
	}
}

// BuildRootCommand assembles the root Cobra command.
//
// The command prints workflows with --instructions, starts the MCP server
// when invoked without arguments, and exposes --config, --help, and
// --version. Help text comes from the embedded cli_help.md template so the
// examples always show the real binary and flag names.
//
// Returns:
//   - *cobra.Command: Root command ready for Execute
func (cf *CLIFramework) BuildRootCommand() *cobra.Command {
	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:     exeName,
		Short:   "TLS certificate metadata inspector with MCP server integration",
		Version: cf.version,
	}

	// Cobra registers the help flag during Execute; the help template needs
	// it earlier to render the flag name with the binary-specific description.
	rootCmd.Flags().BoolP("help", "h", false, "help for "+exeName)

	var showInstructions bool
	rootCmd.PersistentFlags().BoolVar(&showInstructions, "instructions", false, "print usage workflows for certificate inspection")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to MCP server configuration file")

	// Render flag names from the registered flags so the help text cannot
	// drift when a flag is renamed.
	persistentName := func(name string) string {
		if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
			return "--" + f.Name
		}
		return "--" + name
	}
	helpFlagName := "--help"
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		helpFlagName = "--" + f.Name
	}

	if cf.embed == nil {
		panic("CLIFramework embed filesystem not initialized")
	}

	longDesc, examples, err := cf.renderCLIHelp(cliHelpData{
		ExeName:              exeName,
		InstructionsFlagName: persistentName("instructions"),
		ConfigFlagName:       persistentName("config"),
		HelpFlagName:         helpFlagName,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to process CLI help template: %v", err))
	}

	rootCmd.Long = longDesc
	rootCmd.Example = examples

	originalRunE := rootCmd.RunE
	rootCmd.RunE = cf.createRootCommandRunE(&showInstructions, exeName, originalRunE)

	return rootCmd
}

// renderCLIHelp renders the embedded cli_help.md template with the given
// data and splits the result into the command's Long description and its
// Example block.
//
// Parameters:
//   - data: Executable and flag names substituted into the template
//
// Returns:
//   - longDesc: Text above the "## Examples" heading
//   - examples: Text below the "## Examples" heading
//   - err: Template reading, parsing, execution, or splitting errors
func (cf *CLIFramework) renderCLIHelp(data cliHelpData) (longDesc, examples string, err error) {
	raw, err := cf.embed.ReadFile("cli_help.md")
	if err != nil {
		return "", "", fmt.Errorf("failed to load CLI help template: %w", err)
	}

	tmpl, err := template.New("cli_help").Parse(string(raw))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse CLI help template: %w", err)
	}

	var rendered strings.Builder
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", "", fmt.Errorf("failed to execute CLI help template: %w", err)
	}

	return splitHelpSections(rendered.String())
}

// splitHelpSections splits rendered help text at the "## Examples" heading.
// Everything above the heading becomes the Long description, everything
// below it the Example block, both trimmed.
func splitHelpSections(rendered string) (longDesc, examples string, err error) {
	before, after, found := strings.Cut(rendered, "## Examples")
	if !found {
		return "", "", errors.New("CLI help template has invalid format - missing '## Examples' section")
	}

	// Drop the remainder of the heading line
	if _, rest, ok := strings.Cut(after, "\n"); ok {
		after = rest
	} else {
		after = ""
	}

	return strings.TrimSpace(before), strings.TrimSpace(after), nil
}

// startMCPServer loads the configuration, builds the MCP server, and serves
// the stdio transport until the process is signalled or stdin closes.
//
// Returns:
//   - nil on clean termination, including signal-initiated shutdown
//   - error for configuration, build, or transport failures
func (cf *CLIFramework) startMCPServer() error {
	// Server messages go to stderr; stdout belongs to the MCP transport
	l := logger.NewCLILogger()
	l.SetOutput(os.Stderr)

	config, err := loadConfig(cf.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	builder := NewServerBuilder().
		WithConfig(config).
		WithVersion(cf.version).
		WithTools(cf.tools...).
		WithToolsWithConfig(cf.toolsWithConfig...).
		WithResources(cf.resources...).
		WithPrompts(cf.prompts...).
		WithInstructions(cf.instructions)
	if cf.populateCache {
		builder = builder.WithPopulate()
	}

	mcpServer, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	stdioServer := server.NewStdioServer(mcpServer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		sig := <-sigChan
		// \r clears the echoed ^C before the shutdown message
		l.Printf("\rReceived signal %s, initiating graceful shutdown...", sig)
		cancel()
	}()

	l.Printf("TLS Certificate Inspector MCP server started.")

	// Signal-initiated cancellation is a clean stop; anything else from the
	// transport is a real error.
	if err = stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil && errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// printInstructions writes the pre-rendered inspection workflows to stdout.
// The text is the same instruction set MCP clients receive during
// initialization, so the CLI and the protocol never disagree.
func (cf *CLIFramework) printInstructions() error {
	fmt.Print(cf.instructions)

	return nil
}

// createRootCommandRunE builds the RunE function for the root command.
//
// The returned function prints workflows when --instructions was given,
// starts the MCP server when the command line is bare, delegates to the
// original RunE for anything else, and rejects leftover arguments.
//
// Parameters:
//   - showInstructions: Pointer to the --instructions flag value. The flag
//     is bound before parsing and read inside the closure, after Cobra has
//     parsed the command line.
//   - exeName: Executable name for error messages
//   - originalRunE: RunE installed by Cobra before the override, if any
//
// Returns:
//   - func(*cobra.Command, []string) error: The RunE implementation
func (cf *CLIFramework) createRootCommandRunE(showInstructions *bool, exeName string, originalRunE func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if *showInstructions {
			return cf.printInstructions()
		}
		if len(args) == 0 {
			return cf.startMCPServer()
		}
		if originalRunE != nil {
			return originalRunE(cmd, args)
		}
		return fmt.Errorf("%s does not take arguments: %s", exeName, strings.Join(args, " "))
	}
}
