package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// WordsOptions holds flags for the words command.
type WordsOptions struct {
	*RootOptions
	Dictionary string
}

// WordsResult is the JSON payload of the words command.
type WordsResult struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
	Count  int      `json:"count"`
}

// NewWordsCommand creates the words command.
func NewWordsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WordsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "words [prefix]",
		Short: "List dictionary words by prefix",
		Long: `List dictionary words starting with prefix, in alphabetical order.

Without a prefix every word is listed.

Examples:
  wordgrid words --dict words.txt
  wordgrid words sta --dict words.txt --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			return runWords(opts, prefix, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Dictionary, "dict", "d", "", "path to word list (default from config)")

	return cmd
}

func runWords(opts *WordsOptions, prefix string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	dict, err := opts.loadDictionary(f, opts.Dictionary)
	if err != nil {
		return err
	}

	words := dict.WordsWithPrefix(prefix)
	if words == nil {
		words = []string{}
	}
	if opts.Format == "json" {
		return f.Success(WordsResult{Prefix: prefix, Words: words, Count: len(words)})
	}

	w := cmd.OutOrStdout()
	for _, word := range words {
		fmt.Fprintln(w, word)
	}
	return nil
}
