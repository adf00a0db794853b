package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-quick-post/internal/utils"
)

func (c *cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Long: `Show whether a session is stored, its account DID and when the access token
expires. The expiry is read from the token without verifying it; only the
server can tell whether the token is still accepted.`,
		Args:        cobra.NoArgs,
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.printStatus(cmd.OutOrStdout())
			return nil
		},
	}
}

func (c *cli) printStatus(w io.Writer) {
	if !c.async.Service().IsAuthenticated() {
		fmt.Fprintln(w, "Not logged in")
		return
	}

	session := c.async.Service().Session()
	fmt.Fprintln(w, "Logged in")
	fmt.Fprintf(w, "  DID: %s\n", session.DID)

	info, err := utils.ParseTokenInfo(session.AccessJwt)
	switch {
	case errors.Is(err, utils.ErrNoExpiry):
		fmt.Fprintln(w, "  Token expires: never")
	case err != nil:
		c.log.Debug().Err(err).Msg("access token is not a readable jwt")
		fmt.Fprintln(w, "  Token expires: unknown")
	default:
		now := c.now()
		expiresAt := info.ExpiresAt.UTC().Format(time.RFC3339)
		if info.Expired(now) {
			fmt.Fprintf(w, "  Token expires: %s (expired, log in again)\n", expiresAt)
		} else {
			fmt.Fprintf(w, "  Token expires: %s (in %s)\n", expiresAt, info.ExpiresAt.Sub(now).Round(time.Second))
		}
	}
}
