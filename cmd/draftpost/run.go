package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-draftpost/internal/fileutil"
)

// Command names.
const (
	cmdConvert = "convert"
	cmdPreview = "preview"
	cmdVersion = "version"
	cmdHelp    = "help"
)

var commands = []string{cmdConvert, cmdPreview, cmdVersion, cmdHelp}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	for _, c := range commands {
		if arg == c {
			return true
		}
	}
	return false
}

// looksLikeDraft reports whether arg is meant as a draft path rather than a
// mistyped command: it has an extension, a path separator, or exists.
func looksLikeDraft(arg string) bool {
	return filepath.Ext(arg) != "" ||
		strings.ContainsAny(arg, `/\`) ||
		fileutil.Exists(arg)
}

// runMain dispatches args (including the program name) and returns the
// process exit code. Errors are printed to env.Stderr.
func runMain(ctx context.Context, args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	cmd := cmdConvert
	switch {
	case len(rest) == 0:
	case rest[0] == "-h" || rest[0] == "--help":
		printUsage(env.Stdout)
		return ExitSuccess
	case isCommand(rest[0]):
		cmd, rest = rest[0], rest[1:]
	case strings.HasPrefix(rest[0], "-") || looksLikeDraft(rest[0]):
		// Implicit convert.
	default:
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, rest[0])
		fmt.Fprintln(env.Stderr, "error:", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	var err error
	switch cmd {
	case cmdConvert:
		err = runConvertCmd(ctx, rest, env)
	case cmdPreview:
		err = runPreviewCmd(ctx, rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "draftpost %s\n", Version)
	case cmdHelp:
		err = runHelp(rest, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
	}
	return exitCodeFor(err)
}
