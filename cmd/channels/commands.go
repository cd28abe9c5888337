package channels

import (
	"time"

	"github.com/spf13/cobra"
)

// commandTimeout bounds the one-shot commands, including the channel load
const commandTimeout = 30 * time.Second

// AddCommands registers the guide commands on root. A nil factory creates
// sessions from the configuration file and environment.
func AddCommands(root *cobra.Command, factory Factory) {
	if factory == nil {
		factory = NewServiceFactory()
	}

	root.AddCommand(NewListCommand(factory))
	root.AddCommand(NewCategoriesCommand(factory))
	root.AddCommand(NewLanguagesCommand(factory))
	root.AddCommand(NewFavoriteCommand(factory))
	root.AddCommand(NewBrowseCommand(factory))
}
