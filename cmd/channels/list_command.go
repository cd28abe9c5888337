package channels

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Taichi-iskw/tv-guide/internal/model"
)

// NewListCommand creates the list channels command
func NewListCommand(factory Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List channels with what is on now",
		Long: `Fetch the channel directory once and print the channels matching the filters.

Examples:
  tvguide list --category Sports --hd
  tvguide list --search news --sort asc
  tvguide list --favorites --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			category, _ := cmd.Flags().GetString("category")
			language, _ := cmd.Flags().GetString("language")
			hdOnly, _ := cmd.Flags().GetBool("hd")
			favoritesOnly, _ := cmd.Flags().GetBool("favorites")
			sortFlag, _ := cmd.Flags().GetString("sort")
			format, _ := cmd.Flags().GetString("format")

			order, err := model.ParseSortOrder(sortFlag)
			if err != nil {
				return err
			}
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

			// A failed load leaves an empty guide; the formatter reports it
			if err := session.Load(ctx); err != nil {
				session.Logger.Debug("listing without channels", zap.Error(err))
			}

			session.Engine.SetState(model.FilterState{
				SearchTerm:    search,
				Category:      category,
				Language:      language,
				HDOnly:        hdOnly,
				FavoritesOnly: favoritesOnly,
				Sort:          order,
			})

			output, err := formatter.Format(session.Engine.View(), session.Favorites)
			if err != nil {
				return fmt.Errorf("failed to format channels: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringP("search", "q", "", "Match titles (case-insensitive) or channel numbers")
	cmd.Flags().StringP("category", "c", model.OptionAll, "Only show channels of this category")
	cmd.Flags().StringP("language", "l", model.OptionAll, "Only show channels in this language")
	cmd.Flags().Bool("hd", false, "Only show HD channels")
	cmd.Flags().BoolP("favorites", "f", false, "Only show favorite channels")
	cmd.Flags().StringP("sort", "s", "none", "Sort by title: none, asc or desc")
	cmd.Flags().StringP("format", "o", "text", "Output format: text or json")

	return cmd
}
