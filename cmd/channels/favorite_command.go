package channels

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/tv-guide/internal/model"
)

// NewFavoriteCommand creates the favorite command and its subcommands
func NewFavoriteCommand(factory Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite",
		Short: "Manage favorite channels",
		Long:  `Toggle and list the channels marked as favorites.`,
	}

	cmd.AddCommand(newFavoriteToggleCommand(factory))
	cmd.AddCommand(newFavoriteListCommand(factory))

	return cmd
}

func newFavoriteToggleCommand(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [CHANNEL_ID]",
		Short: "Add a channel to favorites, or remove it if already there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.ChannelID(args[0])

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			session, cleanup, err := factory.CreateSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := session.Favorites.Toggle(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to toggle favorite: %w", err)
			}

			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "Added channel %s to favorites\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed channel %s from favorites\n", id)
			}
			return nil
		},
	}
}

func newFavoriteListCommand(factory Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List favorite channels",
		Long: `List the ids of the favorite channels. With --details the channel
directory is fetched and the favorite channels are shown with their schedule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			details, _ := cmd.Flags().GetBool("details")
			format, _ := cmd.Flags().GetString("format")

			formatter, err := GetFormatter(format)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			session, cleanup, err := factory.CreateSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if session.Favorites.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorite channels")
				return nil
			}

			if !details {
				for _, id := range session.Favorites.IDs() {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}

			_ = session.Load(ctx)
			state := model.DefaultFilterState()
			state.FavoritesOnly = true
			session.Engine.SetState(state)

			output, err := formatter.Format(session.Engine.View(), session.Favorites)
			if err != nil {
				return fmt.Errorf("failed to format channels: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolP("details", "d", false, "Fetch and show the favorite channels")
	cmd.Flags().StringP("format", "o", "text", "Output format for --details: text or json")

	return cmd
}
