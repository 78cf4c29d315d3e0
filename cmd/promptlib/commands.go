package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graymanconcepts/prompt-manager/internal/adapter/sqlite"
	"github.com/graymanconcepts/prompt-manager/internal/app"
	"github.com/graymanconcepts/prompt-manager/internal/domain"
	"github.com/graymanconcepts/prompt-manager/internal/importer"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date and print its version",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			v, err := sqlite.SchemaVersion(cmd.Context(), a.DB)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", v)
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the starter prompts into an empty library",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			seeded, err := a.Seeder.SeedIfEmpty(cmd.Context())
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "starter library loaded")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "library not empty, nothing to do")
			}
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE...",
		Short: "Import prompt files, one upload batch per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			var failed []string
			for _, path := range args {
				res, err := a.ImportFile(cmd.Context(), path)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", path, err)
					failed = append(failed, filepath.Base(path))
					continue
				}
				fmt.Fprintf(out, "%s: %d prompts (batch %s, status %s, %d skipped)\n",
					path, len(res.Prompts), res.History.ID, res.History.Status, res.Skipped)
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d files failed: %s", len(failed), len(args), strings.Join(failed, ", "))
			}
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch DIR",
		Short: "Import prompt files as they appear in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			w := importer.NewWatcher(a.Log, args[0], a.ImportOptions(), func(ctx context.Context, path string) error {
				_, err := a.ImportFile(ctx, path)
				return err
			})
			return w.Run(cmd.Context())
		},
	}
}

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
		view   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write prompts as yaml or json in the import format",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := importer.Format(strings.ToLower(format))
			if f != importer.FormatYAML && f != importer.FormatJSON {
				return fmt.Errorf("--format must be yaml or json (got %q)", format)
			}
			v, err := domain.ParseView(view)
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			prompts, err := a.Library.ListPrompts(cmd.Context(), domain.PromptFilter{View: v})
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer file.Close()
				w = file
			}
			return importer.Export(w, f, prompts)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&view, "view", "all", "activity view: all, dashboard or management")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
