package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"variant-matrix/internal/availability"
	"variant-matrix/internal/common"
	"variant-matrix/internal/diagnostic"
	"variant-matrix/internal/selection"
)

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// render writes v as JSON or runs text to print it for humans.
func render(c *cli.Context, v any, text func(p *printer)) error {
	if c.String("format") == formatJSON {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	p := &printer{w: c.App.Writer}
	text(p)

	return p.err
}

func renderOutcome(c *cli.Context, out selection.Outcome) error {
	return render(c, out, func(p *printer) {
		if len(out.Selection) == 0 {
			p.linef("selection: (empty)")
		} else {
			p.linef("selection:")

			for _, name := range common.SortedKeys(out.Selection) {
				p.linef("  %s=%s", name, out.Selection[name])
			}
		}

		for _, d := range out.Diagnostics().All() {
			p.linef("%s: %s", d.Severity, d.String())
		}
	})
}

func availabilityMark(f availability.Flags) string {
	switch {
	case f.Selected:
		return "[x]"
	case f.Available:
		return "[ ]"
	default:
		return " - "
	}
}

func joinValues(vs []string) string {
	return strings.Join(vs, ", ")
}

func severityLevel(s diagnostic.DiagnosticSeverity) zerolog.Level {
	switch s {
	case diagnostic.DiagnosticError:
		return zerolog.ErrorLevel
	case diagnostic.DiagnosticWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
