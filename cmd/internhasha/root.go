package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "internhasha",
		Short:         "Browse internship postings, bookmarks and your applicant profile",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := checkFormat(a.format); err != nil {
				return err
			}
			return a.wire()
		},
	}
	root.PersistentFlags().StringVarP(&a.format, "output", "o", formatTable, "output format: table, json or yaml")

	root.AddCommand(
		newLoginCmd(a),
		newSignupCmd(a),
		newLogoutCmd(a),
		newMeCmd(a),
		newVerifyCmd(a),
		newPostsCmd(a),
		newBookmarksCmd(a),
		newBookmarkCmd(a),
		newProfileCmd(a),
		newSessionCmd(a),
		newVersionCmd(a),
	)
	return root
}
