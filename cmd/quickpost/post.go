package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var errNothingToPost = errors.New("nothing to post: pass text, --stdin or --from-clipboard")

func (c *cli) postCommand() *cobra.Command {
	var (
		fromClipboard bool
		fromStdin     bool
	)

	cmd := &cobra.Command{
		Use:   "post [text...]",
		Short: "Publish a text post",
		Long: `Publish a post. The text is taken from the arguments (joined with spaces),
from stdin with --stdin, or from the system clipboard with --from-clipboard.`,
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.postText(cmd, args, fromClipboard, fromStdin)
			if err != nil {
				return err
			}

			if err = c.async.CreatePostAwait(cmd.Context(), text); err != nil {
				return fmt.Errorf("post failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Posted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromClipboard, "from-clipboard", false, "Read the text from the clipboard")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the text from stdin")
	cmd.MarkFlagsMutuallyExclusive("from-clipboard", "stdin")

	return cmd
}

func (c *cli) postText(cmd *cobra.Command, args []string, fromClipboard, fromStdin bool) (string, error) {
	if len(args) > 0 && (fromClipboard || fromStdin) {
		return "", errors.New("text arguments cannot be combined with --stdin or --from-clipboard")
	}

	switch {
	case fromClipboard:
		text, err := c.readClipboard()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, nil

	case fromStdin:
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimRight(string(raw), "\r\n"), nil

	case len(args) > 0:
		return strings.Join(args, " "), nil
	}

	return "", errNothingToPost
}
