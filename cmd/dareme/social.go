package main

import (
	"fmt"

	"dareme/internal/app"
	"dareme/internal/database/sqlc"

	"github.com/spf13/cobra"
)

var followCmd = &cobra.Command{
	Use:   "follow USERNAME",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, "follow", func(a *app.DareApp, sess *app.Session) error {
			if _, err := a.Follow(sess, args[0]); err != nil {
				return err
			}
			fmt.Printf("%s now follows %s\n", sess.Username, args[0])
			return nil
		})
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow USERNAME",
	Short: "Stop following a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, "unfollow", func(a *app.DareApp, sess *app.Session) error {
			if err := a.Unfollow(sess, args[0]); err != nil {
				return err
			}
			fmt.Printf("%s no longer follows %s\n", sess.Username, args[0])
			return nil
		})
	},
}

var followersCmd = &cobra.Command{
	Use:   "followers [USERNAME]",
	Short: "List followers (default: yours)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("followers", func(a *app.DareApp) error {
			userID, err := userIDOrSelf(cmd, a, args)
			if err != nil {
				return err
			}
			users, err := a.Service().Followers(userID)
			if err != nil {
				return err
			}
			printUsers(users)
			return nil
		})
	},
}

var followingCmd = &cobra.Command{
	Use:   "following [USERNAME]",
	Short: "List followed accounts (default: yours)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("following", func(a *app.DareApp) error {
			userID, err := userIDOrSelf(cmd, a, args)
			if err != nil {
				return err
			}
			users, err := a.Service().Following(userID)
			if err != nil {
				return err
			}
			printUsers(users)
			return nil
		})
	},
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics [USERNAME]",
	Short: "Show creator statistics (default: yours)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("analytics", func(a *app.DareApp) error {
			userID, err := userIDOrSelf(cmd, a, args)
			if err != nil {
				return err
			}
			stats, err := a.Service().GetAnalytics(userID)
			if err != nil {
				return err
			}
			fmt.Printf("Posts:         %d\n", stats.PostCount)
			fmt.Printf("Total views:   %d\n", stats.TotalViews)
			fmt.Printf("Average trend: %.1f\n", stats.AvgTrend)
			fmt.Printf("Followers:     %d\n", stats.FollowerCount)
			return nil
		})
	},
}

func printUsers(users []*sqlc.User) {
	if len(users) == 0 {
		fmt.Println("No users.")
		return
	}
	for _, u := range users {
		fmt.Printf("%-6d %-20s %s\n", u.ID, u.Username, visibility(u.IsPrivate))
	}
}

func init() {
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(unfollowCmd)
	rootCmd.AddCommand(followersCmd)
	rootCmd.AddCommand(followingCmd)
	rootCmd.AddCommand(analyticsCmd)
}
