package cmd

import (
	"github.com/Taichi-iskw/tv-guide/cmd/channels"
)

func init() {
	channels.AddCommands(rootCmd, channels.NewServiceFactory())
}
