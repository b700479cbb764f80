package main

import (
	"bufio"
	"io"
	"strings"
	"text/tabwriter"

	"internhasha/internal/core/posting"
	perr "internhasha/internal/platform/errors"
	"internhasha/internal/services/auth/domain"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var (
		in    domain.LoginInput
		stdin bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if stdin {
				pw, err := readSecret(cmd.InOrStdin())
				if err != nil {
					return err
				}
				in.Password = pw
			}
			u, err := a.auth.Login(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printUser(cmd, a, u)
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "account password")
	cmd.Flags().BoolVar(&stdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func newSignupCmd(a *app) *cobra.Command {
	var (
		in    domain.SignupInput
		stdin bool
	)
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account; pass the code from 'verify check' as --success-code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if stdin {
				pw, err := readSecret(cmd.InOrStdin())
				if err != nil {
					return err
				}
				in.Password = pw
			}
			u, err := a.auth.Signup(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printUser(cmd, a, u)
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "account password")
	cmd.Flags().BoolVar(&stdin, "password-stdin", false, "read the password from stdin")
	cmd.Flags().StringVar(&in.SuccessCode, "success-code", "", "mail verification success code")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session; the local token is cleared even if the server call fails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.auth.Logout(cmd.Context())
		},
	}
}

func newMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := a.auth.Start(cmd.Context())
			if st.User == nil {
				return perr.Unauthorizedf("not logged in")
			}
			return printUser(cmd, a, st.User)
		},
	}
}

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "University mail verification for signup",
	}

	var mail domain.MailInput
	send := &cobra.Command{
		Use:   "send",
		Short: "Mail a verification code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.auth.SendCode(cmd.Context(), mail); err != nil {
				return err
			}
			out := map[string]string{"snuMail": mail.SnuMail, "status": "sent"}
			return render(cmd.OutOrStdout(), a.format, out, func(tw *tabwriter.Writer) {
				row(tw, "code sent to", mail.SnuMail)
			})
		},
	}
	send.Flags().StringVar(&mail.SnuMail, "mail", "", "university mail address")

	var code domain.MailCodeInput
	check := &cobra.Command{
		Use:   "check",
		Short: "Exchange a mailed code for a signup success code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := a.auth.CheckCode(cmd.Context(), code)
			if err != nil {
				return err
			}
			out := map[string]string{"successCode": sc}
			return render(cmd.OutOrStdout(), a.format, out, func(tw *tabwriter.Writer) {
				row(tw, "success code", sc)
			})
		},
	}
	check.Flags().StringVar(&code.SnuMail, "mail", "", "university mail address")
	check.Flags().StringVar(&code.Code, "code", "", "code from the mail")

	cmd.AddCommand(send, check)
	return cmd
}

func printUser(cmd *cobra.Command, a *app, u *posting.User) error {
	return render(cmd.OutOrStdout(), a.format, u, func(tw *tabwriter.Writer) {
		if u == nil {
			row(tw, "logged in, profile unavailable")
			return
		}
		row(tw, "ID", "NAME", "EMAIL")
		row(tw, orDash(u.ID), orDash(u.Name), orDash(u.Email))
	})
}

// readSecret reads one line from r
func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read password from stdin")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
