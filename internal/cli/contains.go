package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ContainsOptions holds flags for the contains command.
type ContainsOptions struct {
	*RootOptions
	Dictionary string
}

// WordCheck reports whether one word is in the dictionary.
type WordCheck struct {
	Word    string `json:"word"`
	Present bool   `json:"present"`
}

// ContainsResult is the JSON payload of the contains command.
type ContainsResult struct {
	Words   []WordCheck `json:"words"`
	Missing int         `json:"missing"`
}

// NewContainsCommand creates the contains command.
func NewContainsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ContainsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "contains <word>...",
		Short: "Check words against the dictionary",
		Long: `Check whether each word is a complete dictionary word.

A proper prefix of a dictionary word is not a word. Lookups ignore case.

Exit codes:
  0 - Every word is in the dictionary
  1 - One or more words are missing
  2 - Command error (unreadable dictionary)

Examples:
  wordgrid contains art tar --dict words.txt`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContains(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Dictionary, "dict", "d", "", "path to word list (default from config)")

	return cmd
}

func runContains(opts *ContainsOptions, words []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	dict, err := opts.loadDictionary(f, opts.Dictionary)
	if err != nil {
		return err
	}

	result := ContainsResult{Words: make([]WordCheck, 0, len(words))}
	for _, w := range words {
		present := dict.Contains(w)
		if !present {
			result.Missing++
		}
		result.Words = append(result.Words, WordCheck{Word: w, Present: present})
	}

	if opts.Format == "json" {
		response := CLIResponse{Status: "ok", Data: result}
		if result.Missing > 0 {
			response.Status = "error"
			response.Error = &CLIError{
				Code:    ErrCodeWordsMissing,
				Message: fmt.Sprintf("%d word(s) not in dictionary", result.Missing),
			}
		}
		if err := f.JSON(response); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for _, c := range result.Words {
			mark := "✓"
			if !c.Present {
				mark = "✗"
			}
			fmt.Fprintf(w, "%s %s\n", mark, c.Word)
		}
	}

	if result.Missing > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d word(s) not in dictionary", result.Missing))
	}
	return nil
}
