package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dearchive/internal/archive"
	"dearchive/internal/fileutil"
	"dearchive/internal/store"
	"dearchive/internal/textutil"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export <store>",
		Short: "Write a store as one monolithic event group document",
		Long: "Export loads every shard of a store and writes the group as a single JSON\n" +
			"document with events embedded in full. Use -o - to write to stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := ctx.storeFolder(args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts, err := ctx.storeOptions()
			if err != nil {
				return err
			}
			group, err := store.Load(folder, opts...)
			if err != nil {
				return err
			}
			data, err := archive.EncodeEventGroup(group, cfg.Output.Indent)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outputPath)
			if target == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if target == "" {
				name := textutil.SanitizeFileName(group.CanonicalAlias())
				if name == "" {
					return errors.New("export: group alias yields an empty file name; pass -o")
				}
				target = name + ".json"
			}
			if err := fileutil.WriteFileAtomic(target, data, 0o644); err != nil {
				return fmt.Errorf("export: write %s: %w", target, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d events to %s\n", len(group.Events), target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination file (default <group>.json, - for stdout)")
	return cmd
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import <file> <store>",
		Short: "Build a store from a monolithic event group document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			group, err := archive.DecodeEventGroup(data)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			folder, err := ctx.storeFolder(args[1])
			if err != nil {
				return err
			}
			opts, err := ctx.storeOptions()
			if err != nil {
				return err
			}
			err = ctx.withStoreLock(folder, func() error {
				if store.IsStore(folder) && !overwrite {
					return fmt.Errorf("import: %s already holds a store (use --overwrite to replace it)", folder)
				}
				return store.Save(group, folder, opts...)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%d events) into %s\n", group.CanonicalAlias(), len(group.Events), folder)
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing store")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
