package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"variant-matrix/internal/catalog"
)

func selectFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "select",
		Aliases: []string{"s"},
		Usage:   "Selected value as Attribute=Value (repeatable)",
	}
}

// parseSelection turns repeated Attribute=Value flags into a Selection.
func parseSelection(pairs []string) (catalog.Selection, error) {
	sel := catalog.Selection{}

	for _, p := range pairs {
		name, value, err := parsePair(p)
		if err != nil {
			return nil, err
		}

		if prev, ok := sel[name]; ok && prev != value {
			return nil, fmt.Errorf("attribute %q selected twice (%q and %q)", name, prev, value)
		}

		sel[name] = value
	}

	return sel, nil
}

func parsePair(p string) (string, string, error) {
	name, value, ok := strings.Cut(p, "=")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	if !ok || name == "" {
		return "", "", fmt.Errorf("invalid selection %q, want Attribute=Value", p)
	}

	return name, value, nil
}
