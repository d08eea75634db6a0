package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	content string
	output  string
	kind    string
	logoDir string
	config  string
	lang    string
	verbose bool
	version bool
}

// parseFlags parses args (including the program name).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("docgen", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.content, "content", "i", "", "JSON content file")
	fs.StringVarP(&f.output, "output", "o", "", "output document path (default: derived from content file)")
	fs.StringVarP(&f.kind, "kind", "k", "debrief", "artifact kind: debrief or presentation")
	fs.StringVar(&f.logoDir, "logo-dir", "", "directory holding the brand icon")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.lang, "lang", "", "language override: en or de")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}
