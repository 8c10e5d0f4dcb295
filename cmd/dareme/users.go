package main

import (
	"fmt"

	"dareme/internal/app"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var userRegisterCmd = &cobra.Command{
	Use:   "register USERNAME EMAIL",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bio, _ := cmd.Flags().GetString("bio")

		return withApp("user-register", func(a *app.DareApp) error {
			password, err := readSecret("DAREME_PASSWORD", "Password")
			if err != nil {
				return err
			}
			id, err := a.Register(args[0], args[1], password, bio)
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s (id %d)\n", args[0], id)
			return nil
		})
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check credentials for --as",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, "user-login", func(a *app.DareApp, sess *app.Session) error {
			fmt.Printf("Authenticated as %s (id %d)\n", sess.Username, sess.UserID)
			return nil
		})
	},
}

var userPrivacyCmd = &cobra.Command{
	Use:       "privacy on|off",
	Short:     "Make your account private or public",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		private := args[0] == "on"
		return withSession(cmd, "user-privacy", func(a *app.DareApp, sess *app.Session) error {
			if err := a.SetPrivacy(sess, private); err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", sess.Username, visibility(private))
			return nil
		})
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show USERNAME",
	Short: "Show a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("user-show", func(a *app.DareApp) error {
			u, err := a.LookupUser(args[0])
			if err != nil {
				return err
			}
			followers, err := a.Service().Followers(u.ID)
			if err != nil {
				return err
			}
			following, err := a.Service().Following(u.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s (id %d, %s)\n", u.Username, u.ID, visibility(u.IsPrivate))
			if u.Bio != "" {
				fmt.Printf("  %s\n", u.Bio)
			}
			if u.AuthProvider.Valid {
				fmt.Printf("  signed in with %s\n", u.AuthProvider.String)
			}
			fmt.Printf("  joined %s, %d followers, %d following\n", u.CreatedAt.Format(timeLayout), len(followers), len(following))
			return nil
		})
	},
}

var userExistsCmd = &cobra.Command{
	Use:   "exists USERNAME",
	Short: "Check whether a username is taken",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("user-exists", func(a *app.DareApp) error {
			taken, err := a.Service().UsernameExists(args[0])
			if err != nil {
				return err
			}
			if taken {
				fmt.Printf("%s is taken\n", args[0])
			} else {
				fmt.Printf("%s is available\n", args[0])
			}
			return nil
		})
	},
}

func visibility(private bool) string {
	if private {
		return "private"
	}
	return "public"
}

func init() {
	userRegisterCmd.Flags().String("bio", "", "Profile bio")

	userCmd.AddCommand(userRegisterCmd)
	userCmd.AddCommand(userLoginCmd)
	userCmd.AddCommand(userPrivacyCmd)
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userExistsCmd)
	rootCmd.AddCommand(userCmd)
}
