package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/temanbulus/nfa-cli/internal/adapters/events"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newWatchCmd(app *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep moods fresh and stream pet events to websocket clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := app.buildRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			session, err := rt.connect(ctx)
			if err != nil {
				return fmt.Errorf("connect wallet: %w", err)
			}
			if err := writeSession(cmd.OutOrStdout(), session); err != nil {
				return err
			}

			listener, err := new(net.ListenConfig).Listen(ctx, "tcp", listen)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", listen, err)
			}

			hub := events.NewHub(rt.bus, app.logger.Named("hub"))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Streaming events on ws://%s/events\n", listener.Addr())

			group, groupCtx := errgroup.WithContext(ctx)
			group.Go(func() error {
				return rt.moods.Run(groupCtx)
			})
			group.Go(func() error {
				return hub.Serve(groupCtx, listener)
			})

			err = group.Wait()
			app.logger.Info("watch stopped", zap.Error(err))
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Event stream listen address (default: events.listen)")
	cmd.PreRun = func(_ *cobra.Command, _ []string) {
		if listen == "" {
			listen = app.cfg.Events.Listen
		}
	}

	return cmd
}
