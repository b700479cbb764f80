package main

import (
	"text/tabwriter"
	"time"

	"internhasha/internal/core/version"
	"internhasha/internal/session"

	"github.com/spf13/cobra"
)

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show where the session lives and when its token expires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := session.Describe(a.sess, a.now())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.format, st, func(tw *tabwriter.Writer) {
				row(tw, "backend", st.Backend)
				row(tw, "logged in", st.Present)
				if st.Subject != "" {
					row(tw, "subject", st.Subject)
				}
				if st.ExpiresAt != nil {
					row(tw, "expires", st.ExpiresAt.Local().Format(time.RFC3339))
					row(tw, "expired", st.Expired)
				}
			})
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bi := version.Info()
			return render(cmd.OutOrStdout(), a.format, bi, func(tw *tabwriter.Writer) {
				row(tw, bi.Service, bi.Version, bi.Commit, bi.Date)
			})
		},
	}
}
