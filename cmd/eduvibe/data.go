package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"eduvibe/internal/bootstrap"
	recorddto "eduvibe/internal/modules/record/dto"
)

func newDataCmd(dataDir *string) *cobra.Command {
	data := &cobra.Command{Use: "data", Short: "Backup, restore and reset the record"}

	var dir string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of the record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.RecordCLI.Export(cmd.Context(), dir)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d bytes to %s\n", out.SizeBytes, out.Path)
				return nil
			})
		},
	}
	export.Flags().StringVar(&dir, "dir", ".", "directory for the backup file")

	var yes bool
	importCmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the record with a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				preview, err := app.RecordCLI.PreviewImport(cmd.Context(), document)
				if err != nil {
					return err
				}
				if err := confirm(yes, "Replace all data?", describeImport(preview)); err != nil {
					return err
				}
				out, err := app.RecordCLI.Import(cmd.Context(), document)
				if err != nil {
					return err
				}
				if err := app.Reindex(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", describeImport(out))
				return nil
			})
		},
	}
	importCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	var clearYes bool
	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete all data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				if err := confirm(clearYes, "Delete all data?", "Playlists, goals, streak and focus history are removed. Export first to keep a copy."); err != nil {
					return err
				}
				if err := app.RecordCLI.Clear(cmd.Context()); err != nil {
					return err
				}
				if err := app.Reindex(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
				return nil
			})
		},
	}
	clear.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Size and contents of the record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				s, err := app.RecordCLI.Stats(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "backend      %s\n", app.Config.Backend)
				_, _ = fmt.Fprintf(w, "size         %.1f KB\n", float64(s.SizeBytes)/1024)
				_, _ = fmt.Fprintf(w, "playlists    %d\n", s.Playlists)
				_, _ = fmt.Fprintf(w, "goals        %d\n", s.Goals)
				_, _ = fmt.Fprintf(w, "sessions     %d\n", s.FocusSessions)
				if s.LastExport != nil {
					_, _ = fmt.Fprintf(w, "last export  %s\n", s.LastExport.Local().Format("2006-01-02 15:04"))
				} else {
					_, _ = fmt.Fprintln(w, "last export  never")
				}
				return nil
			})
		},
	}

	data.AddCommand(export, importCmd, clear, stats)
	return data
}

func readDocument(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return payload, nil
}

func describeImport(s recorddto.ImportSummary) string {
	return fmt.Sprintf("version %s: %d playlists, %d goals, %d focus sessions, streak %d",
		s.Version, s.Playlists, s.Goals, s.FocusSessions, s.Streak)
}
