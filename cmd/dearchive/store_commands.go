package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dearchive/internal/archive"
	"dearchive/internal/store"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <store>",
		Short: "Show a store's group fields and event index without reading shards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := ctx.storeFolder(args[0])
			if err != nil {
				return err
			}
			idx, err := store.LoadIndex(folder)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, idx)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Group: %s\n", idx.Aliases[0])
			if len(idx.Aliases) > 1 {
				fmt.Fprintf(out, "Also known as: %s\n", strings.Join(idx.Aliases[1:], ", "))
			}
			fmt.Fprintf(out, "Folder: %s\n", folder)
			if idx.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", idx.Description)
			}
			if len(idx.Events) == 0 {
				fmt.Fprintln(out, "No events")
				return nil
			}

			rows := make([][]string, 0, len(idx.Events))
			for _, entry := range idx.Events {
				rows = append(rows, []string{
					fmt.Sprintf("%d", entry.Index),
					entry.Alias,
					entry.Dates,
					countCell(entry.CircleCount),
				})
			}
			return writeTable(out,
				[]string{"#", "Event", "Dates", "Circles"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
			)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print event_group.json as parsed")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <store> <event-alias>",
		Short: "Print one event document, circles included",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := ctx.storeFolder(args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ev, err := store.LoadEvent(folder, args[1])
			if err != nil {
				return err
			}
			data, err := archive.EncodeEvent(ev, cfg.Output.Indent)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "verify <store>",
		Short: "Load a store completely and check its index against the shards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := ctx.storeFolder(args[0])
			if err != nil {
				return err
			}
			opts, err := ctx.storeOptions()
			if err != nil {
				return err
			}
			report, err := store.Verify(folder, opts...)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				for _, line := range renderVerifyReport(report, shouldColorize(out)) {
					fmt.Fprintln(out, line)
				}
			}
			if !report.OK() {
				return &issuesFoundError{folder: folder, count: len(report.Issues)}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	return cmd
}

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <store>",
		Short: "Rewrite a store in canonical form, refreshing every index hint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := ctx.storeFolder(args[0])
			if err != nil {
				return err
			}
			if !store.IsStore(folder) {
				return &store.NotAStoreError{Folder: folder}
			}
			opts, err := ctx.storeOptions()
			if err != nil {
				return err
			}
			var events int
			err = ctx.withStoreLock(folder, func() error {
				group, err := store.Load(folder, opts...)
				if err != nil {
					return err
				}
				events = len(group.Events)
				return store.Save(group, folder, opts...)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Normalized %s (%d events)\n", folder, events)
			return nil
		},
	}
}
