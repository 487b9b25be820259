package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dearchive/internal/catalog"
	"dearchive/internal/config"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Build and query the cross-store search catalog",
	}

	catalogCmd.AddCommand(newCatalogBuildCommand(ctx))
	catalogCmd.AddCommand(newCatalogSearchCommand(ctx))
	catalogCmd.AddCommand(newCatalogEventsCommand(ctx))

	return catalogCmd
}

// withCatalog opens the configured catalog for the duration of fn.
func (c *commandContext) withCatalog(fn func(*config.Config, *catalog.Catalog) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	cat, err := catalog.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer cat.Close()
	return fn(cfg, cat)
}

func newCatalogBuildCommand(ctx *commandContext) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "build [root]",
		Short: "Rebuild the catalog from every store under root (default paths.archive_dir)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(cfg *config.Config, cat *catalog.Catalog) error {
				root := cfg.Paths.ArchiveDir
				if len(args) == 1 {
					expanded, err := config.ExpandPath(args[0])
					if err != nil {
						return err
					}
					root = expanded
				}
				n := cfg.Catalog.Workers
				if workers > 0 {
					n = workers
				}
				result, err := cat.Build(cmd.Context(), root, n)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Catalogued %d groups, %d events, %d circles from %s in %s\n",
					result.Groups, result.Events, result.Circles, root, result.Duration.Round(time.Millisecond))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Stores loaded concurrently (default catalog.workers)")
	return cmd
}

func newCatalogSearchCommand(ctx *commandContext) *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Find circles by alias or pen name across every catalogued event",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			return ctx.withCatalog(func(cfg *config.Config, cat *catalog.Catalog) error {
				n := cfg.Catalog.SearchLimit
				if limit > 0 {
					n = limit
				}
				hits, err := cat.SearchCircles(cmd.Context(), term, n)
				if err != nil {
					return err
				}
				if jsonOutput {
					if hits == nil {
						hits = []catalog.CircleHit{}
					}
					return writeJSON(cmd, hits)
				}
				out := cmd.OutOrStdout()
				if len(hits) == 0 {
					fmt.Fprintf(out, "No circles match %q\n", term)
					return nil
				}
				rows := make([][]string, 0, len(hits))
				for _, hit := range hits {
					rows = append(rows, []string{
						hit.Group,
						hit.Event,
						hit.EventDates,
						strings.Join(hit.Aliases, ", "),
						strings.Join(hit.PenNames, ", "),
						hit.Booth,
					})
				}
				return writeTable(out,
					[]string{"Group", "Event", "Dates", "Circle", "Pen names", "Position"},
					rows, nil)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum hits (default catalog.search_limit)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print hits as JSON")
	return cmd
}

func newCatalogEventsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "events <group>",
		Short: "List the catalogued events of one group in index order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(_ *config.Config, cat *catalog.Catalog) error {
				rows, err := cat.Events(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, rows)
				}
				table := make([][]string, 0, len(rows))
				for _, row := range rows {
					status := ""
					if row.Cancelled {
						status = "cancelled"
					}
					table = append(table, []string{
						strconv.Itoa(row.Position),
						row.Alias,
						row.Dates,
						countCell(row.CircleCount),
						status,
					})
				}
				return writeTable(cmd.OutOrStdout(),
					[]string{"#", "Event", "Dates", "Circles", "Status"},
					table,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
				)
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print events as JSON")
	return cmd
}
