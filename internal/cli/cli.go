package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/treegridgo/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly (help
// was requested or no input was given), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("treegridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
TreeGridGo - assembles hierarchical trees from flat record files.

Usage:
  treegridgo [options] [RECORDS_PATH]

Arguments:
  RECORDS_PATH
    Path to a single .hcl record file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	recordsFlag := flagSet.String("records", "", "Path to the record file or directory.")
	rFlag := flagSet.String("r", "", "Path to the record file or directory (shorthand).")
	rootFlag := flagSet.String("root", "", "Root id the hierarchy is assembled under. Defaults to the file's options block, then \"0\".")
	formatFlag := flagSet.String("format", "", "Output format. Options: 'text', 'json' or 'table'.")
	maxDepthFlag := flagSet.Int("max-depth", 0, "Drop descendants deeper than this many levels. 0 is unlimited.")
	strictFlag := flagSet.Bool("strict-cycles", false, "Fail when a second parent claims an already-attached id.")
	lenientFlag := flagSet.Bool("lenient", false, "Skip records whose id cannot be extracted instead of failing.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *recordsFlag != "" {
		path = *recordsFlag
	} else if *rFlag != "" {
		path = *rFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	switch format {
	case "", "text", "json", "table":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'text', 'json' or 'table'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *maxDepthFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid max-depth: must not be negative"}
	}

	config, err := app.NewConfig(app.Config{
		RecordsPath:  path,
		RootID:       *rootFlag,
		Format:       format,
		MaxDepth:     *maxDepthFlag,
		StrictCycles: *strictFlag,
		Lenient:      *lenientFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
