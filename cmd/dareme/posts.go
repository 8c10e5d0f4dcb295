package main

import (
	"fmt"

	"dareme/internal/app"
	"dareme/internal/database/sqlc"

	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage posts",
}

var postCreateCmd = &cobra.Command{
	Use:   "create FILE",
	Short: "Publish an image or video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caption, _ := cmd.Flags().GetString("caption")
		return withSession(cmd, "post-create", func(a *app.DareApp, sess *app.Session) error {
			id, err := a.CreatePost(sess, args[0], caption)
			if err != nil {
				return err
			}
			fmt.Printf("Created post %d\n", id)
			return nil
		})
	},
}

var postShowCmd = &cobra.Command{
	Use:   "show POST_ID",
	Short: "Show a post with its comments and count a view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withApp("post-show", func(a *app.DareApp) error {
			if err := a.Service().RecordView(id); err != nil {
				return err
			}
			p, err := a.Service().GetPost(id)
			if err != nil {
				return err
			}
			comments, err := a.Service().ListComments(id)
			if err != nil {
				return err
			}

			printPost(p)
			for _, c := range comments {
				fmt.Printf("    [%d] user %d, %s: %s\n", c.ID, c.UserID, c.CreatedAt.Format(timeLayout), c.Body)
			}
			return nil
		})
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete POST_ID",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, "post-delete", func(a *app.DareApp, sess *app.Session) error {
			if err := a.DeletePost(sess, id); err != nil {
				return err
			}
			fmt.Printf("Deleted post %d\n", id)
			return nil
		})
	},
}

var postArchiveCmd = &cobra.Command{
	Use:   "archive POST_ID",
	Short: "Hide one of your posts from feeds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, "post-archive", func(a *app.DareApp, sess *app.Session) error {
			if err := a.ArchivePost(sess, id, !undo); err != nil {
				return err
			}
			if undo {
				fmt.Printf("Restored post %d\n", id)
			} else {
				fmt.Printf("Archived post %d\n", id)
			}
			return nil
		})
	},
}

var postListCmd = &cobra.Command{
	Use:   "list [USERNAME]",
	Short: "List a user's posts (default: yours)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archived, _ := cmd.Flags().GetBool("archived")
		return withApp("post-list", func(a *app.DareApp) error {
			userID, err := userIDOrSelf(cmd, a, args)
			if err != nil {
				return err
			}
			posts, err := a.Service().ListUserPosts(userID, archived)
			if err != nil {
				return err
			}
			printPosts(posts)
			return nil
		})
	},
}

var postSaveCmd = &cobra.Command{
	Use:   "save POST_ID",
	Short: "Bookmark a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, "post-save", func(a *app.DareApp, sess *app.Session) error {
			if _, err := a.SavePost(sess, id); err != nil {
				return err
			}
			fmt.Printf("Saved post %d\n", id)
			return nil
		})
	},
}

var postUnsaveCmd = &cobra.Command{
	Use:   "unsave POST_ID",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, "post-unsave", func(a *app.DareApp, sess *app.Session) error {
			if err := a.UnsavePost(sess, id); err != nil {
				return err
			}
			fmt.Printf("Removed bookmark for post %d\n", id)
			return nil
		})
	},
}

var postSavedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List your bookmarks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, "post-saved", func(a *app.DareApp, sess *app.Session) error {
			posts, err := a.Service().ListSaved(sess.UserID)
			if err != nil {
				return err
			}
			printPosts(posts)
			return nil
		})
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show your feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withSession(cmd, "feed", func(a *app.DareApp, sess *app.Session) error {
			posts, err := a.Service().Feed(sess.UserID, limit)
			if err != nil {
				return err
			}
			printPosts(posts)
			return nil
		})
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment POST_ID TEXT",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, "comment", func(a *app.DareApp, sess *app.Session) error {
			cid, err := a.Comment(sess, id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Added comment %d\n", cid)
			return nil
		})
	},
}

var voteCmd = &cobra.Command{
	Use:       "vote POST_ID up|down",
	Short:     "Cast a trend vote (once per post per 24h)",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if args[1] != "up" && args[1] != "down" {
			return fmt.Errorf("vote must be up or down, got %q", args[1])
		}
		return withSession(cmd, "vote", func(a *app.DareApp, sess *app.Session) error {
			p, err := a.Vote(sess, id, args[1] == "up")
			if err != nil {
				return err
			}
			fmt.Printf("Post %d trend level is now %d\n", p.ID, p.TrendLevel)
			return nil
		})
	},
}

func printPost(p *sqlc.Post) {
	archived := ""
	if p.IsArchived {
		archived = "  [archived]"
	}
	fmt.Printf("#%d  %s  user %d  %-5s  trend %2d  views %d  %s%s\n",
		p.ID,
		p.CreatedAt.Format(timeLayout),
		p.UserID,
		p.MediaType,
		p.TrendLevel,
		p.Views,
		p.MediaPath,
		archived,
	)
	if p.Caption != "" {
		fmt.Printf("    %s\n", p.Caption)
	}
}

func printPosts(posts []*sqlc.Post) {
	if len(posts) == 0 {
		fmt.Println("No posts.")
		return
	}
	for _, p := range posts {
		printPost(p)
	}
}

func init() {
	postCreateCmd.Flags().StringP("caption", "c", "", "Caption")
	postArchiveCmd.Flags().Bool("undo", false, "Restore an archived post")
	postListCmd.Flags().Bool("archived", false, "Include archived posts")
	feedCmd.Flags().IntP("limit", "n", 0, "Maximum number of posts (default 50)")

	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postDeleteCmd)
	postCmd.AddCommand(postArchiveCmd)
	postCmd.AddCommand(postListCmd)
	postCmd.AddCommand(postSaveCmd)
	postCmd.AddCommand(postUnsaveCmd)
	postCmd.AddCommand(postSavedCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(voteCmd)
}
