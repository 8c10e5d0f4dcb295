package main

import (
	"fmt"
	"os"

	"dareme/internal/app"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Operator reports",
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("admin-users", func(a *app.DareApp) error {
			users, err := a.Service().ListUsers()
			if err != nil {
				return err
			}
			for _, u := range users {
				provider := "password"
				if u.AuthProvider.Valid {
					provider = u.AuthProvider.String
				}
				fmt.Printf("%-6d %-20s %-30s %-8s %s  %s\n",
					u.ID, u.Username, u.Email, visibility(u.IsPrivate), provider, u.CreatedAt.Format(timeLayout))
			}
			return nil
		})
	},
}

var adminSignupsCmd = &cobra.Command{
	Use:   "signups",
	Short: "Registrations per day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("admin-signups", func(a *app.DareApp) error {
			rows, err := a.Service().DailySignups()
			if err != nil {
				return err
			}
			for _, r := range rows {
				fmt.Printf("%s  %d\n", r.Day, r.Signups)
			}
			return nil
		})
	},
}

var adminActivityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Posts and active posters per day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("admin-activity", func(a *app.DareApp) error {
			rows, err := a.Service().DailyActivity()
			if err != nil {
				return err
			}
			for _, r := range rows {
				fmt.Printf("%s  %4d posts  %4d users\n", r.Day, r.Posts, r.ActiveUsers)
			}
			return nil
		})
	},
}

var adminRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Newest posts across all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withApp("admin-recent", func(a *app.DareApp) error {
			rows, err := a.Service().RecentPosts(limit)
			if err != nil {
				return err
			}
			for _, r := range rows {
				fmt.Printf("#%d  %s  %-20s %-5s trend %2d  %s\n",
					r.ID, r.CreatedAt.Format(timeLayout), r.Username, r.MediaType, r.TrendLevel, r.Caption)
			}
			return nil
		})
	},
}

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Stored media objects",
}

var mediaGetCmd = &cobra.Command{
	Use:   "get KEY DEST",
	Short: "Download a media object to a local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("media-get", func(a *app.DareApp) error {
			f, err := os.OpenFile(args[1], os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			if err := a.Service().FetchMedia(args[0], f); err != nil {
				f.Close()
				os.Remove(args[1])
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", args[1])
			return nil
		})
	},
}

func init() {
	adminRecentCmd.Flags().IntP("limit", "n", 0, "Maximum number of posts (default 20)")

	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminSignupsCmd)
	adminCmd.AddCommand(adminActivityCmd)
	adminCmd.AddCommand(adminRecentCmd)
	rootCmd.AddCommand(adminCmd)

	mediaCmd.AddCommand(mediaGetCmd)
	rootCmd.AddCommand(mediaCmd)
}
