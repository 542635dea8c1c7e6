package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saketh8887/medconnect/internal/store"
	"github.com/saketh8887/medconnect/internal/tracker"
)

// userStudyLog credits flushed time to one account. The signed-in session
// of the TUI is left alone.
type userStudyLog struct {
	store  *store.Store
	userID string
}

func (l userStudyLog) LogStudyTime(ctx context.Context, hours float64) error {
	return l.store.AppendStudySession(ctx, l.userID, hours)
}

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Log study time without the TUI until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		u, err := rt.store.VerifyCredentials(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Tracking study time for %s. Press Ctrl+C to stop.\n", u.Name)

		t := tracker.New(userStudyLog{store: rt.store, userID: u.ID})
		p := tracker.StartPoller(ctx, t, tracker.SystemClock{},
			tracker.WithInterval(rt.cfg.PollInterval),
			tracker.WithLogger(rt.log),
		)
		<-ctx.Done()

		if _, err := p.Close(context.Background()); err != nil {
			return fmt.Errorf("final flush: %w", err)
		}
		if err := p.Err(); err != nil {
			fmt.Fprintln(out, "Some intervals could not be saved:", err)
		}
		totals := t.Totals()
		fmt.Fprintf(out, "Logged %.2f h this session.\n", totals.Flushed)
		return nil
	},
}

func init() {
	trackCmd.Flags().String("email", "", "Account email")
	trackCmd.Flags().String("password", "", "Account password")
	_ = trackCmd.MarkFlagRequired("email")
	_ = trackCmd.MarkFlagRequired("password")
}
