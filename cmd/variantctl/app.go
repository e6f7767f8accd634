package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"variant-matrix/internal/catalog"
	"variant-matrix/internal/match"
)

const (
	formatJSON = "json"
	formatText = "text"
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "variantctl",
		Usage:   "Inspect variant compatibility for a product catalog",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),

		// Attribute values may contain commas.
		DisableSliceFlagSeparator: true,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML catalog",
				EnvVars: []string{"VARIANTCTL_CATALOG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"VARIANTCTL_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				Usage:   "Output format (text, json)",
				EnvVars: []string{"VARIANTCTL_FORMAT"},
			},
		},

		Before: setupLogging,

		Commands: []*cli.Command{
			domainCommand(),
			matrixCommand(),
			availabilityCommand(),
			cleanCommand(),
			validCommand(),
			applyCommand(),
			resolveCommand(),
			closestCommand(),
			exportCommand(),
		},
	}
}

func setupLogging(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: errWriter(c)})

	switch f := c.String("format"); f {
	case formatJSON, formatText:
	default:
		return fmt.Errorf("unknown output format %q", f)
	}

	return nil
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}

	return os.Stderr
}

// loadCatalog reads the catalog named by --catalog and logs structural
// findings. Error findings fail the load.
func loadCatalog(c *cli.Context) (*catalog.Catalog, error) {
	path := c.String("catalog")
	if path == "" {
		return nil, errors.New("--catalog is required")
	}

	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}

	diags := catalog.Validate(cat.Variants)
	for _, d := range diags.All() {
		log.WithLevel(severityLevel(d.Severity)).Str("code", d.Code).Msg(d.String())
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, diags.Error())
	}

	log.Debug().
		Str("product", cat.Product).
		Int("variants", len(cat.Variants)).
		Msg("catalog loaded")

	return cat, nil
}

func comparatorFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "comparator",
		Value: "bigram",
		Usage: "Similarity strategy (bigram, levenshtein)",
	}
}

func comparator(c *cli.Context) (match.Comparator, error) {
	cmp, ok := match.ComparatorByName(c.String("comparator"))
	if !ok {
		return nil, fmt.Errorf("unknown comparator %q", c.String("comparator"))
	}

	return cmp, nil
}
