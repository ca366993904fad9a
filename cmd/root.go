package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/acrmp/postbot/broadcast"
	"github.com/acrmp/postbot/config"
	"github.com/acrmp/postbot/terminal"
	"github.com/acrmp/postbot/web"
	"github.com/spf13/cobra"
)

var errNotSent = errors.New("post not sent")

const topicPrompt = "Enter post topic or description (end with CTRL-D):"

type app struct {
	logger *slog.Logger
	level  *slog.LevelVar

	configPath string
	envFile    string
	debug      bool

	cfg config.Config
}

func newRootCommand(logger *slog.Logger, level *slog.LevelVar, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{logger: logger, level: level}

	root := &cobra.Command{
		Use:           "postbot",
		Short:         "Draft WhatsApp broadcast posts with a LLM and send them through WhatsApp Web",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.debug {
				a.level.Set(slog.LevelDebug)
			}
			cfg, err := config.Load(a.configPath, a.envFile, a.debug)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "path to a .env file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(a.serveCommand(), a.sendCommand())
	return root
}

func (a *app) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the post form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Addr
			}

			c, closer, err := a.controller(cmd.Context())
			if err != nil {
				return err
			}
			defer closer.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           web.NewServer(a.logger, c, a.cfg.DefaultPhone),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ScheduleLead+a.cfg.LoadWait+30*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (defaults to the configured addr)")
	return cmd
}

func (a *app) sendCommand() *cobra.Command {
	var topic, phone string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Draft a post and send it",
		Long: "Draft a post and send it.\n\n" +
			"The topic is read from standard input when --topic is not given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("topic") {
				t, err := terminal.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()).Prompt(topicPrompt)
				if err != nil {
					return fmt.Errorf("reading topic: %w", err)
				}
				topic = t
			}
			if !cmd.Flags().Changed("phone") {
				phone = a.cfg.DefaultPhone
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c, closer, err := a.controller(ctx)
			if err != nil {
				return err
			}
			defer closer.Close()

			r := c.GenerateAndSend(ctx, topic, phone)
			if r.Content != "" {
				fmt.Fprintln(cmd.OutOrStdout(), r.Content)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), r.Message)
			if r.Outcome != broadcast.Sent {
				return errNotSent
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&topic, "topic", "", "post topic or description")
	cmd.Flags().StringVar(&phone, "phone", "", "WhatsApp number with country code (defaults to the configured default_phone)")
	return cmd
}

func (a *app) controller(ctx context.Context) (*broadcast.Controller, io.Closer, error) {
	g, err := newGenerator(ctx, a.logger, a.cfg)
	if err != nil {
		return nil, nil, err
	}
	s, closer, err := newSender(a.logger, a.cfg)
	if err != nil {
		return nil, nil, err
	}
	return broadcast.NewController(a.logger, g, s), closer, nil
}
