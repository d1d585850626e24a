package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/reticle/internal/adapter/output"
	"github.com/jmylchreest/reticle/internal/cache"
)

var listOpts struct {
	format   string
	fullHash bool
	search   string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached image parameters",
	Long: `List every image with remembered parameters, most recently used first.

Examples:
  reticle list
  reticle list --format json
  reticle list --format hashes
  reticle list --search scope`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOpts.format, "format", "f", string(output.FormatTable),
		"Output format: table, plain, json, yaml, hashes")
	listCmd.Flags().BoolVar(&listOpts.fullHash, "full-hash", false,
		"Show full content hashes in table and plain output")
	listCmd.Flags().StringVarP(&listOpts.search, "search", "s", "",
		"Only list images whose recorded path contains this text")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(listOpts.format)
	if err != nil {
		return err
	}

	opts := output.DefaultFormatterOptions()
	if listOpts.fullHash {
		opts.HashLen = 0
	}

	entries := cache.Search(cache.Load(cachePath()).Entries(), listOpts.search)
	return output.NewFormatter(format, opts).Format(cmd.OutOrStdout(), entries)
}
