package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"variant-matrix/internal/availability"
	"variant-matrix/internal/cache"
	"variant-matrix/internal/catalog"
	"variant-matrix/internal/match"
	"variant-matrix/internal/matrix"
	"variant-matrix/internal/resolve"
	"variant-matrix/internal/selection"
)

// matrices is shared by every command run in this process.
var matrices = cache.NewMatrixCache()

// engine is what every catalog-backed command needs.
type engine struct {
	catalog *catalog.Catalog
	matrix  *matrix.Matrix
	domain  catalog.Domain
	// version is the content version of the catalog's variants.
	version uint64
}

func loadEngine(c *cli.Context) (*engine, error) {
	cat, err := loadCatalog(c)
	if err != nil {
		return nil, err
	}

	m, dom := matrices.Get(cat.Product, cat.Variants)

	e := &engine{
		catalog: cat,
		matrix:  m,
		domain:  dom,
		version: cache.Version(cat.Variants),
	}

	log.Debug().
		Str("product", cat.Product).
		Str("version", e.versionString()).
		Int("builds", matrices.Builds()).
		Msg("matrix ready")

	return e, nil
}

func (e *engine) versionString() string {
	return fmt.Sprintf("%016x", e.version)
}

func loadSelection(c *cli.Context) (*engine, catalog.Selection, error) {
	sel, err := parseSelection(c.StringSlice("select"))
	if err != nil {
		return nil, nil, err
	}

	e, err := loadEngine(c)
	if err != nil {
		return nil, nil, err
	}

	return e, sel, nil
}

func domainCommand() *cli.Command {
	return &cli.Command{
		Name:  "domain",
		Usage: "List attributes and their values",
		Action: func(c *cli.Context) error {
			e, err := loadEngine(c)
			if err != nil {
				return err
			}

			res := struct {
				Product    string         `json:"product"`
				Version    string         `json:"version"`
				Attributes catalog.Domain `json:"attributes"`
			}{Product: e.catalog.Product, Version: e.versionString(), Attributes: e.domain}

			return render(c, res, func(p *printer) {
				p.linef("version: %s", res.Version)

				for _, a := range e.domain {
					p.linef("%s: %s", a.Name, joinValues(a.Values))
				}
			})
		},
	}
}

func matrixCommand() *cli.Command {
	return &cli.Command{
		Name:  "matrix",
		Usage: "Print the combination matrix",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "Dump the raw matrix structure",
			},
		},
		Action: func(c *cli.Context) error {
			e, err := loadEngine(c)
			if err != nil {
				return err
			}

			snap := e.matrix.Snapshot()

			if c.Bool("dump") {
				_, err := fmt.Fprint(c.App.Writer, spew.Sdump(snap))
				return err
			}

			res := struct {
				Version string                              `json:"version"`
				Buckets map[string]map[string]matrix.Bucket `json:"buckets"`
			}{Version: e.versionString(), Buckets: snap}

			return render(c, res, func(p *printer) {
				p.linef("version: %s", res.Version)

				for _, attr := range e.matrix.Attributes() {
					for _, value := range e.matrix.Values(attr) {
						b := snap[attr][value]
						p.linef("%s=%s items=[%s]", attr, value, joinValues(b.Items))

						for _, other := range e.matrix.Attributes() {
							if co, ok := b.CoOccurs[other]; ok {
								p.linef("  %s: %s", other, joinValues(co))
							}
						}
					}
				}
			})
		},
	}
}

func availabilityCommand() *cli.Command {
	return &cli.Command{
		Name:  "availability",
		Usage: "Show which values can still be selected",
		Flags: []cli.Flag{
			selectFlag(),
			&cli.BoolFlag{
				Name:  "exact",
				Usage: "Require a real variant for every available value instead of pairwise co-occurrence",
			},
		},
		Action: func(c *cli.Context) error {
			e, sel, err := loadSelection(c)
			if err != nil {
				return err
			}

			var opts []availability.Option
			if c.Bool("exact") {
				opts = append(opts, availability.WithExactAvailability())
			}

			res := availability.Calculate(e.matrix, sel, e.domain, opts...)

			return render(c, res, func(p *printer) {
				for _, a := range e.domain {
					p.linef("%s:", a.Name)

					for _, v := range a.Values {
						p.linef("  %s %s", availabilityMark(res[a.Name][v]), v)
					}
				}
			})
		},
	}
}

func cleanCommand() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Remove unknown and incompatible values from a selection",
		Flags: []cli.Flag{selectFlag()},
		Action: func(c *cli.Context) error {
			e, sel, err := loadSelection(c)
			if err != nil {
				return err
			}

			cleaned, drops := selection.CleanWithReport(sel, e.matrix)
			out := selection.Outcome{Selection: cleaned, Dropped: drops}

			return renderOutcome(c, out)
		},
	}
}

func validCommand() *cli.Command {
	return &cli.Command{
		Name:  "valid",
		Usage: "Check whether a selection is a valid combination",
		Flags: []cli.Flag{selectFlag()},
		Action: func(c *cli.Context) error {
			e, sel, err := loadSelection(c)
			if err != nil {
				return err
			}

			res := struct {
				Pairwise bool `json:"pairwise"`
				Exact    bool `json:"exact"`
			}{
				Pairwise: selection.IsValidCombination(sel, e.matrix),
				Exact:    resolve.Exists(sel, e.matrix),
			}

			return render(c, res, func(p *printer) {
				p.linef("pairwise: %t", res.Pairwise)
				p.linef("exact: %t", res.Exact)
			})
		},
	}
}

func applyCommand() *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "Set one attribute on a selection and repair the rest",
		Flags: []cli.Flag{
			selectFlag(),
			&cli.StringFlag{
				Name:     "set",
				Usage:    "The user's change as Attribute=Value (empty value clears)",
				Required: true,
			},
			comparatorFlag(),
			&cli.BoolFlag{
				Name:  "single-attempt",
				Usage: "Only try the closest replacement per dropped attribute",
			},
			&cli.Float64Flag{
				Name:  "min-score",
				Usage: "Minimum similarity for a replacement",
			},
		},
		Action: func(c *cli.Context) error {
			name, value, err := parsePair(c.String("set"))
			if err != nil {
				return err
			}

			cmp, err := comparator(c)
			if err != nil {
				return err
			}

			e, sel, err := loadSelection(c)
			if err != nil {
				return err
			}

			opts := []selection.RepairOption{
				selection.WithComparator(cmp),
				selection.WithMinScore(c.Float64("min-score")),
			}
			if c.Bool("single-attempt") {
				opts = append(opts, selection.WithSingleAttempt())
			}

			out := selection.Apply(sel, name, value, e.matrix, opts...)

			log.Debug().
				Int("dropped", len(out.Dropped)).
				Int("unrepaired", len(out.Unrepaired)).
				Int("repaired", len(out.Repaired)).
				Msg("selection applied")

			return renderOutcome(c, out)
		},
	}
}

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "Find the variants matching a selection",
		Flags: []cli.Flag{selectFlag()},
		Action: func(c *cli.Context) error {
			e, sel, err := loadSelection(c)
			if err != nil {
				return err
			}

			ids := resolve.Resolve(sel, e.matrix)
			id, complete := resolve.One(sel, e.matrix, e.domain)

			res := struct {
				Variants []string `json:"variants"`
				Variant  string   `json:"variant,omitempty"`
			}{Variants: ids, Variant: id}

			return render(c, res, func(p *printer) {
				if complete {
					p.linef("variant: %s", id)
					return
				}

				if len(ids) == 0 {
					p.linef("no matching variant")
					return
				}

				p.linef("candidates: %s", joinValues(ids))
			})
		},
	}
}

func closestCommand() *cli.Command {
	return &cli.Command{
		Name:  "closest",
		Usage: "Rank candidate values by similarity to a target",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "target",
				Aliases:  []string{"t"},
				Usage:    "Value to match",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "candidate",
				Usage: "Candidate value (repeatable)",
			},
			&cli.StringFlag{
				Name:  "attribute",
				Usage: "Use the catalog values of this attribute as candidates",
			},
			comparatorFlag(),
		},
		Action: func(c *cli.Context) error {
			cmp, err := comparator(c)
			if err != nil {
				return err
			}

			candidates := c.StringSlice("candidate")

			if attr := c.String("attribute"); attr != "" {
				e, err := loadEngine(c)
				if err != nil {
					return err
				}

				candidates = append(candidates, e.matrix.Values(attr)...)
			}

			ranked := match.Rank(cmp, c.String("target"), candidates)

			return render(c, ranked, func(p *printer) {
				if len(ranked) == 0 {
					p.linef("no candidates")
					return
				}

				for _, cand := range ranked {
					p.linef("%.3f %s", cand.Score, cand.Value)
				}

				if ranked.IsAmbiguous(match.DefaultAmbiguityThreshold) {
					p.linef("ambiguous: the top two scores are within %.2f", match.DefaultAmbiguityThreshold)
				}
			})
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the loaded catalog back as YAML, with generated ids pinned",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Destination file (default: stdout)",
			},
		},
		Action: func(c *cli.Context) error {
			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}

			if path := c.String("output"); path != "" {
				if err := catalog.WriteFile(cat, path); err != nil {
					return err
				}

				log.Info().Str("path", path).Int("variants", len(cat.Variants)).Msg("catalog exported")

				return nil
			}

			data, err := catalog.Marshal(cat)
			if err != nil {
				return fmt.Errorf("failed to marshal catalog: %w", err)
			}

			_, err = c.App.Writer.Write(data)

			return err
		},
	}
}
