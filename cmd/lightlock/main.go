package main

import (
	"os"

	"github.com/spf13/cobra"

	"lightlock/pkg/utils"
)

func main() {
	utils.LoadEnv()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lightlock",
		Short:         "Light-Lock Gallery: a login-protected photo gallery",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runServe,
	}

	serve := newServeCmd()
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newUsersCmd(), newImagesCmd(), newPreviewCmd(), newBenchCmd())
	return root
}
