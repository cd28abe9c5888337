package channels

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/tv-guide/internal/guide"
)

// NewCategoriesCommand creates the command listing channel categories
func NewCategoriesCommand(factory Factory) *cobra.Command {
	return newOptionsCommand(factory, "categories", "List the channel categories", "No categories found",
		(*guide.Engine).Categories)
}

// NewLanguagesCommand creates the command listing channel languages
func NewLanguagesCommand(factory Factory) *cobra.Command {
	return newOptionsCommand(factory, "languages", "List the channel languages", "No languages found",
		(*guide.Engine).Languages)
}

func newOptionsCommand(factory Factory, use, short, empty string, options func(*guide.Engine) []string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			session, cleanup, err := factory.CreateSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			_ = session.Load(ctx)

			values := options(session.Engine)
			if len(values) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), empty)
				return nil
			}
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}
