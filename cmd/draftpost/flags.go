package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-draftpost/internal/assets"
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds flags locating the site and the post date.
type siteFlags struct {
	root   string
	output string
	date   string
}

// draftFlags holds flags overriding how the draft is read and rendered.
type draftFlags struct {
	author     bool
	layout     string
	slug       string
	blockquote string
}

// writeFlags holds flags controlling what convert touches on disk.
type writeFlags struct {
	keep   bool
	dryRun bool
	force  bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	site   siteFlags
	draft  draftFlags
	write  writeFlags
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common commonFlags
	site   siteFlags
	draft  draftFlags
	style  string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug details")
}

// addSiteFlags adds site location flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags, outputUsage string) {
	fs.StringVar(&f.root, "root", "", "site root directory")
	fs.StringVarP(&f.output, "output", "o", "", outputUsage)
	fs.StringVar(&f.date, "date", "", "post date: auto, today, yesterday or YYYY-MM-DD")
}

// addDraftFlags adds draft rendering flags to a FlagSet.
func addDraftFlags(fs *flag.FlagSet, f *draftFlags) {
	fs.BoolVar(&f.author, "author", false, "draft has an author line")
	fs.StringVar(&f.layout, "layout", "", "front matter layout")
	fs.StringVar(&f.slug, "slug", "", "slug style: simple, normalized")
	fs.StringVar(&f.blockquote, "blockquote", "", "blockquote rule: first, all")
}

// addWriteFlags adds write control flags to a FlagSet.
func addWriteFlags(fs *flag.FlagSet, f *writeFlags) {
	fs.BoolVar(&f.keep, "keep", false, "keep the draft after writing the post")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "print the post instead of writing it")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing post")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet(cmdConvert, flag.ContinueOnError)
	f := &convertFlags{}

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site, "output directory (overrides the collection)")
	addDraftFlags(fs, &f.draft)
	addWriteFlags(fs, &f.write)

	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string, usage io.Writer) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet(cmdPreview, flag.ContinueOnError)
	f := &previewFlags{}

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site, "HTML output file (default: stdout)")
	addDraftFlags(fs, &f.draft)
	fs.StringVar(&f.style, "style", "", "preview style: "+styleNames())

	fs.SetOutput(usage)
	fs.Usage = func() { printPreviewUsage(usage) }

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parse runs fs.Parse and rejects more than one positional argument.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: expected one draft, got %d", ErrInvalidFlags, fs.NArg())
	}
	return nil
}

// styleNames lists the embedded preview styles for usage text.
func styleNames() string {
	return strings.Join(assets.NewEmbeddedLoader().Styles(), ", ")
}
