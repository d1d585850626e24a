package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/reticle/internal/cache"
)

var hashCmd = &cobra.Command{
	Use:   "hash <image>",
	Short: "Print the content hash used as the cache key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := cache.HashFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to hash image: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
