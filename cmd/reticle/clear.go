package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/reticle/internal/adapter/output"
	"github.com/jmylchreest/reticle/internal/cache"
)

var clearOpts struct {
	hash string
}

var clearCmd = &cobra.Command{
	Use:   "clear [image]",
	Short: "Clear cached parameters for an image",
	Long: `Remove the remembered target and opacity for an image.

The image is identified by its content, so a renamed or moved copy of the
same file clears the same entry. Entries for images that no longer exist
can be cleared by hash prefix, as shown by reticle list.

Examples:
  reticle clear ~/crosshairs/dot.png
  reticle clear --hash 3f9a0c`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().StringVar(&clearOpts.hash, "hash", "",
		"Clear the entry whose content hash starts with this prefix")
}

func runClear(cmd *cobra.Command, args []string) error {
	if (len(args) == 1) == (clearOpts.hash != "") {
		return errors.New("specify either an image or --hash")
	}

	path := cachePath()
	paramCache := cache.Load(path)

	var hash string
	if len(args) == 1 {
		var err error
		hash, err = cache.HashFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to hash image: %w", err)
		}
	} else {
		resolved, err := paramCache.ResolveHash(clearOpts.hash)
		switch {
		case errors.Is(err, cache.ErrNoMatch):
			// Report like a missing image entry.
			hash = clearOpts.hash
		case err != nil:
			return err
		default:
			hash = resolved
		}
	}

	out := cmd.OutOrStdout()
	if removed, ok := paramCache.Clear(hash); ok {
		fmt.Fprintf(out, "Removed cached parameters: %s\n", output.FormatParams(removed))
	} else {
		fmt.Fprintln(out, "Cached parameters not found, nothing was removed")
	}

	return paramCache.Save(path)
}
