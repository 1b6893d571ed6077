package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/xmljson/internal/config"
	"github.com/mcncl/xmljson/internal/converter"
	"github.com/mcncl/xmljson/internal/errors"
	"github.com/mcncl/xmljson/internal/webui"
)

// CLI defines the command-line interface
var CLI struct {
	Input            string `help:"Path to input XML file. If not specified, reads from stdin." short:"i" type:"path"`
	Output           string `help:"Path to output JSON file. If not specified, writes to stdout." short:"o" type:"path"`
	Pretty           bool   `help:"Pretty-print the JSON output with two-space indentation." default:"true" negatable:""`
	PrefixAttributes bool   `help:"Prefix attribute keys to distinguish them from child elements." default:"true" negatable:""`
	Config           string `help:"Path to config file. Discovered from the working directory when omitted." short:"c" type:"path"`
	Serve            bool   `help:"Start the browser-based editor instead of converting once."`
	Addr             string `help:"Listen address for the browser editor. Defaults to the configured address."`
	Debug            bool   `help:"Enable debug logging." short:"d"`
	Version          bool   `help:"Show version information." short:"v"`
	Interactive      bool   `help:"Run in interactive mode, allowing direct XML input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("xmljson"),
		kong.Description("A tool to convert XML to JSON"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("xmljson version %s\n", Version)
		return
	}

	cfg, err := config.LoadConfigWithCLI(CLI.Config, CLI.Pretty, CLI.PrefixAttributes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Debug: CLI.Debug, Config: cfg})
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: xmljson --help\n")

		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	if CLI.Serve {
		addr := CLI.Addr
		if addr == "" {
			addr = ctx.Config.Server.Addr
		}
		return webui.NewServer(ctx.Config).ListenAndServe(addr)
	}

	jsonOut, err := convertInput(ctx.Config)
	if err != nil {
		// Error is already wrapped by the conversion pipeline
		return err
	}

	return writeOutput(jsonOut)
}

// convertInput reads XML from file or stdin and converts it
func convertInput(cfg *config.Config) (string, error) {
	if CLI.Input != "" {
		// Convert from file
		return converter.ConvertFile(CLI.Input, cfg)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput(cfg)
		}
		// No data provided on stdin and not in interactive mode
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	xmlData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}

	return converter.Convert(string(xmlData), cfg)
}

// writeOutput writes the JSON string to file or stdout
func writeOutput(jsonOut string) error {
	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, []byte(jsonOut), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Converted JSON written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Println(strings.TrimSpace(jsonOut))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste XML
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput(cfg *config.Config) (string, error) {
	fmt.Fprintln(os.Stderr, "xmljson Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your XML below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var xmlBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			xmlBuilder.WriteString(line)
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		xmlBuilder.WriteString(line)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing XML...")
	return converter.Convert(xmlBuilder.String(), cfg)
}
