package main

import (
	"fmt"

	"dareme/internal/app"

	"github.com/spf13/cobra"
)

var msgCmd = &cobra.Command{
	Use:   "msg",
	Short: "Direct messages",
}

var msgSendCmd = &cobra.Command{
	Use:   "send USERNAME [TEXT]",
	Short: "Send a message, optionally with --attach FILE",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		attach, _ := cmd.Flags().GetString("attach")
		var text string
		if len(args) > 1 {
			text = args[1]
		}
		return withSession(cmd, "msg-send", func(a *app.DareApp, sess *app.Session) error {
			id, err := a.SendMessage(sess, args[0], text, attach)
			if err != nil {
				return err
			}
			fmt.Printf("Sent message %d to %s\n", id, args[0])
			return nil
		})
	},
}

var msgInboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, "msg-inbox", func(a *app.DareApp, sess *app.Session) error {
			convs, err := a.Service().ListConversations(sess.UserID)
			if err != nil {
				return err
			}
			if len(convs) == 0 {
				fmt.Println("No conversations.")
				return nil
			}
			for _, c := range convs {
				unread := ""
				if c.UnreadCount > 0 {
					unread = fmt.Sprintf("  (%d unread)", c.UnreadCount)
				}
				fmt.Printf("%-20s %s  %s%s\n", c.OtherUsername, c.LastMessageAt.Format(timeLayout), c.LastMessage, unread)
			}
			return nil
		})
	},
}

var msgThreadCmd = &cobra.Command{
	Use:   "thread USERNAME",
	Short: "Read a conversation and mark it read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withSession(cmd, "msg-thread", func(a *app.DareApp, sess *app.Session) error {
			msgs, err := a.Thread(sess, args[0], limit)
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				fmt.Println("No messages.")
				return nil
			}
			for _, m := range msgs {
				from := args[0]
				if m.SenderID == sess.UserID {
					from = sess.Username
				}
				media := ""
				if m.MediaPath.Valid {
					media = "  [" + m.MediaPath.String + "]"
				}
				fmt.Printf("%s  %-15s %s%s\n", m.CreatedAt.Format(timeLayout), from, m.Content, media)
			}
			return nil
		})
	},
}

var msgUnreadCmd = &cobra.Command{
	Use:   "unread",
	Short: "Count unread messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, "msg-unread", func(a *app.DareApp, sess *app.Session) error {
			n, err := a.Service().UnreadCount(sess.UserID)
			if err != nil {
				return err
			}
			fmt.Printf("%d unread\n", n)
			return nil
		})
	},
}

func init() {
	msgSendCmd.Flags().String("attach", "", "Attach an image or video")
	msgThreadCmd.Flags().IntP("limit", "n", 0, "Maximum number of messages (default 50)")

	msgCmd.AddCommand(msgSendCmd)
	msgCmd.AddCommand(msgInboxCmd)
	msgCmd.AddCommand(msgThreadCmd)
	msgCmd.AddCommand(msgUnreadCmd)
	rootCmd.AddCommand(msgCmd)
}
