package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	docgen "github.com/onethousand/go-docgen"
	"github.com/onethousand/go-docgen/internal/config"
)

// ErrNoContent is returned when no content file is specified.
var ErrNoContent = errors.New("no content file specified (use --content)")

// run executes one generation request from parsed flags.
func run(ctx context.Context, flags *cliFlags, stderr io.Writer) error {
	if flags.content == "" {
		return ErrNoContent
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	kind := docgen.Kind(flags.kind)

	lang := flags.lang
	if lang == "" {
		lang = cfg.Language
	}
	logoDir := flags.logoDir
	if logoDir == "" {
		logoDir = cfg.Assets.LogoDir
	}
	output := flags.output
	if output == "" {
		output = defaultOutputPath(flags.content, kind, cfg.Output.DefaultDir)
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Generating %s from %s\n", kind, flags.content)
	}

	svc := docgen.New(docgen.WithBranding(docgen.Branding{
		PrimaryColor:   cfg.Brand.PrimaryColor,
		HighlightColor: cfg.Brand.HighlightColor,
		HeadingFont:    cfg.Brand.HeadingFont,
		BodyFont:       cfg.Brand.BodyFont,
	}))

	err := svc.Generate(ctx, docgen.Input{
		ContentPath: flags.content,
		OutputPath:  output,
		LogoDir:     logoDir,
		Kind:        kind,
		Language:    lang,
	})
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Wrote %s\n", output)
	}
	return nil
}

// defaultOutputPath derives the output file from the content file
// name, the artifact kind, and the configured output directory.
func defaultOutputPath(contentPath string, kind docgen.Kind, dir string) string {
	base := filepath.Base(contentPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+kind.Ext())
}
