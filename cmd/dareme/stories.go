package main

import (
	"fmt"

	"dareme/internal/app"

	"github.com/spf13/cobra"
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Ephemeral stories",
}

var storyCreateCmd = &cobra.Command{
	Use:   "create FILE",
	Short: "Post a story visible for 24 hours",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caption, _ := cmd.Flags().GetString("caption")
		return withSession(cmd, "story-create", func(a *app.DareApp, sess *app.Session) error {
			id, err := a.CreateStory(sess, args[0], caption)
			if err != nil {
				return err
			}
			fmt.Printf("Created story %d\n", id)
			return nil
		})
	},
}

var storyListCmd = &cobra.Command{
	Use:   "list [USERNAME]",
	Short: "List active stories (default: everyone)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("story-list", func(a *app.DareApp) error {
			var userID int64
			if len(args) > 0 {
				u, err := a.LookupUser(args[0])
				if err != nil {
					return err
				}
				userID = u.ID
			}
			stories, err := a.Service().ListActiveStories(userID)
			if err != nil {
				return err
			}
			if len(stories) == 0 {
				fmt.Println("No active stories.")
				return nil
			}
			for _, s := range stories {
				fmt.Printf("#%d  user %d  expires %s  %s  %s\n", s.ID, s.UserID, s.ExpiresAt.Format(timeLayout), s.MediaPath, s.Caption)
			}
			return nil
		})
	},
}

var storyViewCmd = &cobra.Command{
	Use:   "view STORY_ID",
	Short: "Mark a story as seen",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, "story-view", func(a *app.DareApp, sess *app.Session) error {
			return a.ViewStory(sess, id)
		})
	},
}

var storyViewersCmd = &cobra.Command{
	Use:   "viewers STORY_ID",
	Short: "List who has seen a story",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withApp("story-viewers", func(a *app.DareApp) error {
			viewers, err := a.Service().StoryViewers(id)
			if err != nil {
				return err
			}
			if len(viewers) == 0 {
				fmt.Println("No viewers.")
				return nil
			}
			for _, v := range viewers {
				fmt.Printf("%-20s %s\n", v.Username, v.ViewedAt.Format(timeLayout))
			}
			return nil
		})
	},
}

func init() {
	storyCreateCmd.Flags().StringP("caption", "c", "", "Caption")

	storyCmd.AddCommand(storyCreateCmd)
	storyCmd.AddCommand(storyListCmd)
	storyCmd.AddCommand(storyViewCmd)
	storyCmd.AddCommand(storyViewersCmd)
	rootCmd.AddCommand(storyCmd)
}
