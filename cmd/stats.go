package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/profile"
	"github.com/saketh8887/medconnect/internal/store"
)

const recentSessions = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study time and progress for a user",
	Long:  "Show study time and progress for --email, or for the signed-in user when omitted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		var u *profile.UserProfile
		if email != "" {
			u, err = rt.store.UserByEmail(ctx, email)
		} else {
			u, err = rt.store.CurrentUser(ctx)
		}
		if err != nil {
			return fmt.Errorf("look up user: %w", err)
		}
		if u == nil {
			return fmt.Errorf("no user signed in; pass --email")
		}

		total, err := rt.store.TotalStudyHours(ctx, u.ID)
		if err != nil {
			return err
		}
		sessions, err := rt.store.StudySessions(ctx, u.ID, store.QueryOpts{})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s <%s>  %s, %s\n\n", u.Name, u.Email, u.Role, u.Year)
		fmt.Fprintf(out, "Study time:        %.2f h over %d sessions\n", total, len(sessions))
		fmt.Fprintf(out, "Topics completed:  %d / %d\n", u.CompletedTopicIDs.Len(), catalog.Default().TopicCount())
		fmt.Fprintf(out, "Chapters done:     %d\n", u.CompletedChapterIDs.Len())
		fmt.Fprintf(out, "Quiz average:      %.0f%%\n", u.AverageScore())

		if len(sessions) == 0 {
			return nil
		}
		fmt.Fprintln(out, "\nRecent sessions")
		if len(sessions) > recentSessions {
			sessions = sessions[len(sessions)-recentSessions:]
		}
		for i := len(sessions) - 1; i >= 0; i-- {
			s := sessions[i]
			fmt.Fprintf(out, "  %s  %6.1f min\n", s.Timestamp.Local().Format("2006-01-02 15:04"), s.Hours*60)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("email", "", "Account email (default: signed-in user)")
}
