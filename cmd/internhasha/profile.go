package main

import (
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	perr "internhasha/internal/platform/errors"
	"internhasha/internal/services/applicant/domain"

	"github.com/spf13/cobra"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or save the applicant profile",
	}
	cmd.AddCommand(newProfileShowCmd(a), newProfileSaveCmd(a))
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored applicant profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.applicant.Fetch(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.format, p, func(tw *tabwriter.Writer) {
				if p == nil {
					row(tw, "no profile yet, create one with 'profile save'")
					return
				}
				row(tw, "cohort", orDash(p.Cohort))
				row(tw, "department", orDash(p.DepartmentLabel))
				row(tw, "cv", orDash(p.CvKey))
				if len(p.Positions) > 0 {
					row(tw, "positions", strings.Join(p.Positions, ", "))
				}
			})
		},
	}
}

func newProfileSaveCmd(a *app) *cobra.Command {
	var (
		studentID string
		mainMajor string
		subMajors []string
		cvPath    string
	)
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update the applicant profile",
		Long: "Create or update the applicant profile. Flags that are not given keep the " +
			"stored values; the CV PDF is always required.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, _, err := a.applicant.EditForm(cmd.Context())
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if fl.Changed("student-id") {
				form.StudentID = studentID
			}
			if fl.Changed("main-major") {
				form.MainMajor = mainMajor
			}
			if fl.Changed("sub-major") {
				form.SubMajors = subMajors
			}
			if cvPath != "" {
				cv, err := readCV(cvPath)
				if err != nil {
					return err
				}
				form.CV = cv
			}
			if err := a.applicant.Save(cmd.Context(), form); err != nil {
				return err
			}
			out := map[string]any{"saved": true, "majors": form.Majors()}
			return render(cmd.OutOrStdout(), a.format, out, func(tw *tabwriter.Writer) {
				row(tw, "profile saved", strings.Join(form.Majors(), ", "))
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&studentID, "student-id", "", "two-digit cohort, e.g. 23")
	f.StringVar(&mainMajor, "main-major", "", "main major")
	f.StringArrayVar(&subMajors, "sub-major", nil, "sub major, repeatable (max 6)")
	f.StringVar(&cvPath, "cv", "", "path to the CV PDF")
	return cmd
}

// readCV loads the file; size and type are checked by the form rules
func readCV(path string) (*domain.CV, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read cv %s", path), domain.FieldCV)
	}
	return &domain.CV{Name: filepath.Base(path), Data: b}, nil
}
