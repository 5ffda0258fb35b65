package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: draftpost [command] [draft] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert a draft into a post (default)")
	fmt.Fprintln(w, "  preview    Render a draft as an HTML page")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'draftpost help <command>' for details on a specific command.")
}

// printDraftFormat prints the draft layout shared by convert and preview.
func printDraftFormat(w io.Writer) {
	fmt.Fprintln(w, "Draft:")
	fmt.Fprintln(w, "  title: <text>")
	fmt.Fprintln(w, "  author: <text>              blog drafts or --author only")
	fmt.Fprintln(w, "  tag: <a, b, c>")
	fmt.Fprintln(w, "  cover_image: <path>         optional")
	fmt.Fprintln(w, "  content: <body...>          label optional")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Shorthand:")
	fmt.Fprintln(w, "  (alt)![path]  ![path]  (text)[url]  //italic//  ##bold##  ../quote\\..")
}

// printSharedFlags prints flags common to convert and preview.
func printSharedFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --root <dir>          Site root (default: config root or .)")
	fmt.Fprintln(w, "      --date <s>            Post date: auto, today, yesterday, YYYY-MM-DD")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Draft:")
	fmt.Fprintln(w, "      --author              Draft has an author line")
	fmt.Fprintln(w, "      --layout <s>          Front matter layout (default: post)")
	fmt.Fprintln(w, "      --slug <s>            Slug style: simple, normalized")
	fmt.Fprintln(w, "      --blockquote <s>      Blockquote rule: first, all")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug details")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: draftpost [convert] [draft] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a draft into a front matter post, then delete the draft.")
	fmt.Fprintln(w, "The draft defaults to post.txt. Drafts named blog* go to _blog and")
	fmt.Fprintln(w, "carry an author line; others go to _posts.")
	fmt.Fprintln(w)
	printDraftFormat(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (overrides the collection)")
	fmt.Fprintln(w, "      --keep                Keep the draft after writing")
	fmt.Fprintln(w, "  -n, --dry-run             Print the post, write nothing")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing post")
	fmt.Fprintln(w)
	printSharedFlags(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: draftpost preview [draft] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a draft as a standalone HTML page. The draft is not modified.")
	fmt.Fprintln(w, "Site paths such as /assets/cat.png resolve under the site root.")
	fmt.Fprintln(w)
	printDraftFormat(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       HTML file, or directory for <post>.html (default: stdout)")
	fmt.Fprintln(w, "      --style <name>        Style: "+styleNames())
	fmt.Fprintln(w)
	printSharedFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdConvert:
		printConvertUsage(env.Stdout)
	case cmdPreview:
		printPreviewUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: draftpost version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: draftpost help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
