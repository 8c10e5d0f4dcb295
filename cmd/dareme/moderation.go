package main

import (
	"fmt"

	"dareme/internal/app"
	"dareme/internal/dareme"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Moderation reports",
}

var reportCreateCmd = &cobra.Command{
	Use:       "create TYPE CONTENT_ID REASON",
	Short:     "Report content (post, comment, user, story, message, submission)",
	Args:      cobra.ExactArgs(3),
	ValidArgs: dareme.ReportableTypes,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return withSession(cmd, "report-create", func(a *app.DareApp, sess *app.Session) error {
			rid, err := a.Report(sess, args[0], id, args[2])
			if err != nil {
				return err
			}
			fmt.Printf("Filed report %d\n", rid)
			return nil
		})
	},
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		return withApp("report-list", func(a *app.DareApp) error {
			reports, err := a.Service().ListReports(status)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Printf("No %s reports.\n", status)
				return nil
			}
			for _, r := range reports {
				fmt.Printf("#%d  %s  %-10s %-6d by user %d  %-9s %s\n",
					r.ID, r.CreatedAt.Format(timeLayout), r.ContentType, r.ContentID, r.ReporterID, r.Status, r.Reason)
			}
			return nil
		})
	},
}

var reportResolveCmd = &cobra.Command{
	Use:       "resolve REPORT_ID resolved|dismissed",
	Short:     "Close a pending report",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{dareme.ReportResolved, dareme.ReportDismissed},
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withApp("report-resolve", func(a *app.DareApp) error {
			if err := a.ResolveReport(id, args[1]); err != nil {
				return err
			}
			fmt.Printf("Report %d %s\n", id, args[1])
			return nil
		})
	},
}

func init() {
	reportListCmd.Flags().String("status", dareme.ReportPending, "pending, resolved or dismissed")

	reportCmd.AddCommand(reportCreateCmd)
	reportCmd.AddCommand(reportListCmd)
	reportCmd.AddCommand(reportResolveCmd)
	rootCmd.AddCommand(reportCmd)
}
