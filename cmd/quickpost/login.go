package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) loginCommand() *cobra.Command {
	var (
		identifier string
		password   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Create a session and store it",
		Long: `Log in with a handle or email and an app password. When --password is
omitted it is prompted for on a terminal, or read as one line from stdin.`,
		Args:        cobra.NoArgs,
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("password") {
				var err error
				password, err = c.promptPassword(cmd)
				if err != nil {
					return err
				}
			}

			if _, err := c.async.Service().Login(cmd.Context(), identifier, password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", c.async.Service().Session().DID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&identifier, "identifier", "i", "", "Handle or email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "App password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("identifier")

	return cmd
}

func (c *cli) promptPassword(cmd *cobra.Command) (string, error) {
	fd := stdinFD()
	if c.isTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := c.readPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
