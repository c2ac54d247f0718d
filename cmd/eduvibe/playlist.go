package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eduvibe/internal/bootstrap"
	playlistdomain "eduvibe/internal/modules/playlist/domain"
	playlistdto "eduvibe/internal/modules/playlist/dto"
)

func newPlaylistCmd(dataDir *string) *cobra.Command {
	playlist := &cobra.Command{Use: "playlist", Short: "Study playlists and their videos"}

	var source, url, titlesText string
	var titles []string
	add := &cobra.Command{
		Use:   "add <name> --video <title>... | --titles <text>",
		Short: "Create a playlist; only the first video starts unlocked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all := append([]string{}, titles...)
			if titlesText != "" {
				all = append(all, playlistdomain.ParseTitles(titlesText)...)
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.PlaylistCLI.Create(cmd.Context(), args[0], source, url, all)
				if err != nil {
					return err
				}
				p := out.Playlist
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) with %d videos\n", p.Name, p.ID, p.TotalVideos)
				printEarned(cmd, out.NewlyEarned)
				return nil
			})
		},
	}
	add.Flags().StringVar(&source, "source", "", "youtube|udemy|coursera|other")
	add.Flags().StringVar(&url, "url", "", "playlist url; video links get &index=N")
	add.Flags().StringArrayVar(&titles, "video", nil, "video title, repeatable")
	add.Flags().StringVar(&titlesText, "titles", "", "video titles, one per line")

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List playlists with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				items, err := app.PlaylistCLI.List(cmd.Context(), search)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no playlists")
					return nil
				}
				for _, p := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d/%d\t%d%%\n", p.ID, p.Source, p.Name, p.CompletedVideos, p.TotalVideos, p.Progress)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&search, "search", "", "match playlist names and video titles")

	show := &cobra.Command{
		Use:   "show <playlist>",
		Short: "Show a playlist and its videos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				p, err := app.PlaylistCLI.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printPlaylist(cmd, p)
				return nil
			})
		},
	}

	check := &cobra.Command{
		Use:   "check <playlist> <video>",
		Short: "Mark a video complete (video is an id or 1-based position)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.PlaylistCLI.Check(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed %q  %s %d%%  streak %d\n", out.Video.Title, out.Playlist.Name, out.Playlist.Progress, out.Streak)
				if out.UnlockedNext != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "unlocked next video %s\n", out.UnlockedNext)
				}
				printEarned(cmd, out.NewlyEarned)
				return nil
			})
		},
	}

	uncheck := &cobra.Command{
		Use:   "uncheck <playlist> <video>",
		Short: "Mark a video incomplete; unlocked videos stay unlocked",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.PlaylistCLI.Uncheck(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "unchecked %q  %s %d%%\n", out.Video.Title, out.Playlist.Name, out.Playlist.Progress)
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <playlist>",
		Short: "Delete a playlist; study history is kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				p, err := app.PlaylistCLI.Delete(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s (%s)\n", p.Name, p.ID)
				return nil
			})
		},
	}

	playlist.AddCommand(add, list, show, check, uncheck, del)
	return playlist
}

func printPlaylist(cmd *cobra.Command, p playlistdto.PlaylistOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s (%s)\nsource=%s progress=%d%% videos=%d/%d\n", p.Name, p.ID, p.Source, p.Progress, p.CompletedVideos, p.TotalVideos)
	if p.URL != "" {
		_, _ = fmt.Fprintf(w, "url=%s\n", p.URL)
	}
	for _, v := range p.Videos {
		state := checkMark(v.Completed)
		if v.Locked {
			state = "[-]"
		}
		_, _ = fmt.Fprintf(w, "%s %3d. %s\n", state, v.Position, v.Title)
	}
}
