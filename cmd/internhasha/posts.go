package main

import (
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"internhasha/internal/core/posting"
	perr "internhasha/internal/platform/errors"
	"internhasha/internal/platform/validate"
	"internhasha/internal/services/posts/domain"

	"github.com/spf13/cobra"
)

func newPostsCmd(a *app) *cobra.Command {
	var (
		in     domain.ListInput
		order  string
		window int
	)
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List internship postings",
		Long: "List one server page of postings, or with --window N the Nth page of " +
			"12 cut from the first two server pages combined.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := parseOrder(order)
			if err != nil {
				return err
			}
			in.Order = string(o)
			if err := validate.Check(in); err != nil {
				return err
			}

			if window > 0 {
				w, err := a.posts.Window(cmd.Context(), in.Filter(), window)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), a.format, w, func(tw *tabwriter.Writer) {
					postTable(tw, w.Posts, a.now())
					row(tw)
					row(tw, "page", w.Page, "of", w.TotalPages, "total", w.Total)
				})
			}

			page, err := a.posts.List(cmd.Context(), in.Filter())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.format, page, func(tw *tabwriter.Writer) {
				postTable(tw, page.Posts, a.now())
				row(tw)
				row(tw, "page", in.Page, "last page", page.LastPage())
			})
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&in.Roles, "role", nil, "position filter, repeatable (FRONT, BACKEND, ...)")
	f.StringSliceVar(&in.Domains, "domain", nil, "company domain filter, repeatable (FINTECH, ...)")
	f.BoolVar(&in.IsActive, "active", false, "only open postings")
	f.StringVar(&order, "order", "latest", "sort order: latest or deadline")
	f.IntVar(&in.Page, "page", 0, "0-based server page")
	f.IntVar(&window, "window", 0, "1-based page of the combined first two server pages")
	return cmd
}

func newBookmarksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bookmarks",
		Short: "List bookmarked postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			posts, err := a.posts.Bookmarks(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.format, posts, func(tw *tabwriter.Writer) {
				postTable(tw, posts, a.now())
			})
		},
	}
}

func newBookmarkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Add or remove a bookmark",
	}
	set := func(use, short string, on bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <post-id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id := strings.TrimSpace(args[0])
				var err error
				if on {
					err = a.posts.Add(cmd.Context(), id)
				} else {
					err = a.posts.Remove(cmd.Context(), id)
				}
				if err != nil {
					return err
				}
				out := map[string]any{"id": id, "isBookmarked": on}
				return render(cmd.OutOrStdout(), a.format, out, func(tw *tabwriter.Writer) {
					row(tw, id, map[bool]string{true: "bookmarked", false: "unbookmarked"}[on])
				})
			},
		}
	}
	cmd.AddCommand(
		set("add", "Bookmark a posting", true),
		set("remove", "Remove a bookmark", false),
	)
	return cmd
}

// parseOrder accepts the names or the wire values
func parseOrder(s string) (posting.Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "latest", "0":
		return posting.OrderLatest, nil
	case "deadline", "1":
		return posting.OrderDeadline, nil
	}
	return "", perr.WithField(perr.InvalidArgf("unknown order %q (latest, deadline)", s), "order")
}

func postTable(tw *tabwriter.Writer, posts []posting.Post, now time.Time) {
	row(tw, "ID", "COMPANY", "POSITION", "DOMAIN", "HEADCOUNT", "DEADLINE", "BOOKMARK")
	for _, p := range posts {
		hc := "-"
		if p.HeadCount != nil {
			hc = strconv.Itoa(*p.HeadCount) + "명"
		}
		mark := ""
		if p.Bookmarked() {
			mark = "*"
		}
		row(tw,
			p.ID,
			orDash(p.CompanyName),
			orDash(p.PositionTitle),
			orDash(posting.Domain(p.Domain).DisplayName()),
			hc,
			posting.DeadlineStatus(p.EmploymentEndDate, now),
			mark,
		)
	}
}
