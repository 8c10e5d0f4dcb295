package main

import (
	"fmt"

	"dareme/internal/app"
	"dareme/internal/dareme"

	"github.com/spf13/cobra"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Creator challenges",
}

var challengeCreateCmd = &cobra.Command{
	Use:   "create TITLE",
	Short: "Open a challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, _ := cmd.Flags().GetString("description")
		reward, _ := cmd.Flags().GetInt64("reward")
		days, _ := cmd.Flags().GetInt("days")
		return withSession(cmd, "challenge-create", func(a *app.DareApp, sess *app.Session) error {
			id, err := a.CreateChallenge(sess, args[0], desc, reward, days)
			if err != nil {
				return err
			}
			fmt.Printf("Created challenge %d\n", id)
			return nil
		})
	},
}

var challengeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List challenges by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		return withApp("challenge-list", func(a *app.DareApp) error {
			challenges, err := a.Service().ListChallenges(status)
			if err != nil {
				return err
			}
			if len(challenges) == 0 {
				fmt.Printf("No %s challenges.\n", status)
				return nil
			}
			for _, c := range challenges {
				fmt.Printf("#%d  %-30s %4d pts  ends %s\n", c.ID, c.Title, c.RewardPoints, c.EndsAt.Format(timeLayout))
			}
			return nil
		})
	},
}

var challengeShowCmd = &cobra.Command{
	Use:   "show CHALLENGE_ID",
	Short: "Show a challenge and its leaderboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withApp("challenge-show", func(a *app.DareApp) error {
			c, err := a.Service().GetChallenge(id)
			if err != nil {
				return err
			}
			subs, err := a.Service().ListSubmissions(id)
			if err != nil {
				return err
			}

			fmt.Printf("#%d %s [%s]\n", c.ID, c.Title, c.Status)
			if c.Description != "" {
				fmt.Printf("  %s\n", c.Description)
			}
			fmt.Printf("  reward %d pts, by user %d, ends %s\n", c.RewardPoints, c.CreatorID, c.EndsAt.Format(timeLayout))
			for i, s := range subs {
				fmt.Printf("  %2d. submission %d by user %d  %d votes  %s %s\n", i+1, s.ID, s.UserID, s.VoteCount, s.MediaPath, s.Caption)
			}
			return nil
		})
	},
}

var challengeSubmitCmd = &cobra.Command{
	Use:   "submit CHALLENGE_ID FILE",
	Short: "Enter a challenge",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		caption, _ := cmd.Flags().GetString("caption")
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, "challenge-submit", func(a *app.DareApp, sess *app.Session) error {
			sid, err := a.Submit(sess, id, args[1], caption)
			if err != nil {
				return err
			}
			fmt.Printf("Created submission %d\n", sid)
			return nil
		})
	},
}

var challengeVoteCmd = &cobra.Command{
	Use:   "vote SUBMISSION_ID",
	Short: "Vote for a submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, "challenge-vote", func(a *app.DareApp, sess *app.Session) error {
			s, err := a.VoteSubmission(sess, id)
			if err != nil {
				return err
			}
			fmt.Printf("Submission %d has %d votes\n", s.ID, s.VoteCount)
			return nil
		})
	},
}

var challengeCloseCmd = &cobra.Command{
	Use:   "close CHALLENGE_ID",
	Short: "Close one of your challenges",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, "challenge-close", func(a *app.DareApp, sess *app.Session) error {
			if err := a.CloseChallenge(sess, id); err != nil {
				return err
			}
			fmt.Printf("Closed challenge %d\n", id)
			return nil
		})
	},
}

func init() {
	challengeCreateCmd.Flags().StringP("description", "d", "", "Description")
	challengeCreateCmd.Flags().Int64("reward", 0, "Reward points")
	challengeCreateCmd.Flags().Int("days", 7, "Duration in days")
	challengeListCmd.Flags().String("status", dareme.ChallengeActive, "active or closed")
	challengeSubmitCmd.Flags().StringP("caption", "c", "", "Caption")

	challengeCmd.AddCommand(challengeCreateCmd)
	challengeCmd.AddCommand(challengeListCmd)
	challengeCmd.AddCommand(challengeShowCmd)
	challengeCmd.AddCommand(challengeSubmitCmd)
	challengeCmd.AddCommand(challengeVoteCmd)
	challengeCmd.AddCommand(challengeCloseCmd)
	rootCmd.AddCommand(challengeCmd)
}
