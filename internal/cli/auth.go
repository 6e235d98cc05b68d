package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"storeadmin/internal/api"
	"storeadmin/internal/assets"
	"storeadmin/internal/session"
	"storeadmin/internal/ui"
)

var (
	flagUsername string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := GetDeps()

		username, password := flagUsername, flagPassword
		if username == "" || password == "" {
			if d.Headless.IsHeadless() {
				return errors.New("login: --username and --password are required without a terminal")
			}
			if err := promptCredentials(&username, &password); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
		}

		token, err := d.Auth.Login(cmd.Context(), username, password)
		if err != nil {
			return loginFailure(err)
		}

		if err := d.Session.Save(session.Session{
			Token:    token,
			Username: username,
			SavedAt:  time.Now(),
		}); err != nil {
			return fmt.Errorf("store session: %w", err)
		}

		d.Logger.Info().Str("username", username).Msg("logged in")
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := GetDeps()

		if _, err := d.Session.Load(); err != nil {
			if errors.Is(err, session.ErrNotLoggedIn) {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			return err
		}

		// A failed logout call leaves the local session in place so the
		// operator can retry.
		if err := d.Auth.Logout(cmd.Context()); err != nil {
			d.Logger.Warn().Err(err).Msg("logout request failed")
			ui.Warn(cmd.ErrOrStderr(), d.Theme, "logout request failed: "+errorText(err))
			return nil
		}

		if err := d.Session.Clear(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := GetDeps()

		sess, err := d.Session.Load()
		if err != nil {
			return err
		}

		ident, err := d.Auth.Identity(cmd.Context())
		if err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				return sessionRejected(err)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "username: %s\n", ident.Username)
		if url := assets.StaticURL(d.API.BaseURL(), ident.Avatar); url != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "avatar:   %s\n", url)
		}
		if exp := sess.Expiry(); !exp.IsZero() {
			fmt.Fprintf(cmd.OutOrStdout(), "expires:  %s\n", exp.Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&flagUsername, "username", "u", "", "account username")
	loginCmd.Flags().StringVarP(&flagPassword, "password", "p", "", "account password")
}

// promptCredentials collects username and password interactively.
func promptCredentials(username, password *string) error {
	required := func(s string) error {
		if s == "" {
			return errors.New("Required")
		}
		return nil
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Value(username).Validate(required),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password).Validate(required),
		),
	)
	return form.Run()
}

// loginFailure surfaces the HTTP status text of a rejected login.
func loginFailure(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("login failed: %s", apiErr.StatusText)
	}
	return fmt.Errorf("login failed: %w", err)
}

// sessionRejected converts a 401 into the console's version of the
// login redirect: a clear instruction to sign in again.
func sessionRejected(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("session rejected (%s): run `storeadmin login`", apiErr.StatusText)
	}
	return fmt.Errorf("session rejected: run `storeadmin login`: %w", err)
}
