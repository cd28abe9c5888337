package channels

import (
	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/tv-guide/internal/tui"
)

// NewBrowseCommand creates the interactive guide command
func NewBrowseCommand(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse channels interactively",
		Long: `Open the interactive guide. Type / to search, c and l to cycle the
category and language, h for HD only, f for favorites only, s to change the
sort order and space to toggle the selected channel as a favorite.

Logs are discarded unless --log-file is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, cleanup, err := factory.CreateSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(ctx, session.Engine, session.Loader, session.Logger)
		},
	}
}
