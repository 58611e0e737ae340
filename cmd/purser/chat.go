package main

import (
	"github.com/spf13/cobra"

	"github.com/purser-dev/purser/internal/tui"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation with your wallet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initWallet(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			return tui.Run(ctx, initEngine(), store)
		},
	}
}
