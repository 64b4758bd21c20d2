package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/travelhub/travel-client/internal/api/admin"
	"github.com/travelhub/travel-client/internal/api/portal"
	"github.com/travelhub/travel-client/internal/client"
	"github.com/travelhub/travel-client/internal/config"
	"github.com/travelhub/travel-client/internal/logger"
	"github.com/travelhub/travel-client/internal/session"
	"github.com/travelhub/travel-client/internal/version"
)

const (
	surfaceAdmin  = "admin"
	surfacePortal = "portal"
)

var errNotLoggedIn = errors.New("not logged in, run travelctl login first")

// app holds the state shared by all subcommands. It is populated by setup before any command runs.
type app struct {
	surface string
	envFile string
	out     io.Writer

	cfg    *config.Config
	log    *slog.Logger
	client *client.Client
	admin  *admin.API
	portal *portal.API
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:   "travelctl",
		Short: "Command line client for the travel platform APIs",
		Long: `travelctl talks to the admin dashboard API or the end-user API of the travel platform.
Sessions are kept per surface, so an admin login and a traveller login can coexist.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	cmd.Version = version.Get().String()

	cmd.PersistentFlags().StringVar(&a.surface, "surface", surfacePortal, "API surface to use: admin or portal")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "optional dotenv file loaded before the environment")

	cmd.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.spotsCmd(),
		a.spotCmd(),
		a.ordersCmd(),
		a.bannersCmd(),
		a.dashboardCmd(),
		a.favoriteCmd(),
		a.payCmd(),
		a.imageURLCmd(),
		a.versionCmd(),
	)

	return cmd
}

func (a *app) setup() error {
	if a.surface != surfaceAdmin && a.surface != surfacePortal {
		return fmt.Errorf("invalid surface %q, use admin or portal", a.surface)
	}

	cfg, err := config.NewConfig(a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	keys, baseURL := session.UserKeys, cfg.UserBaseURL()
	if a.surface == surfaceAdmin {
		keys, baseURL = session.AdminKeys, cfg.AdminBaseURL()
	}

	sess := session.New(session.NewFileStore(cfg.SessionFile(a.surface)), keys)
	if err := sess.Restore(); err != nil {
		return fmt.Errorf("could not restore %s session: %w", a.surface, err)
	}
	if sess.TokenStatus(time.Now()) == session.TokenExpired {
		a.log.Warn("stored token has expired", slog.String("surface", a.surface))
	}

	effects := &client.LogEffects{Logger: a.log}
	opts := client.Options{
		BaseURL:               baseURL,
		AssetURL:              cfg.AssetBaseURL(),
		Timeout:               cfg.RequestTimeout,
		UpgradeInsecureAssets: a.surface == surfacePortal && cfg.UpgradeInsecureAssets,
		SessionExpiredPolicy:  cfg.Policy(),
		RequestsPerSecond:     cfg.RequestsPerSecond,
		Burst:                 cfg.Burst,
		Language:              cfg.Language,
		Logger:                a.log,
	}
	a.client = client.New(opts, sess, effects)

	switch a.surface {
	case surfaceAdmin:
		// shared lookups go to the end-user API anonymously so they can never invalidate the admin session
		publicOpts := opts
		publicOpts.BaseURL = cfg.UserBaseURL()
		public := client.New(publicOpts, session.New(session.NewMemoryStore(), session.UserKeys), effects)
		a.admin = admin.New(a.client, public)
	case surfacePortal:
		a.portal = portal.New(a.client)
	}

	a.log.Debug("travelctl ready",
		slog.String("surface", a.surface),
		slog.String("base_url", baseURL),
		slog.Bool("logged_in", sess.IsLoggedIn()),
	)
	return nil
}

func (a *app) requireSurface(surface, command string) error {
	if a.surface != surface {
		return fmt.Errorf("%s is only available on the %s surface", command, surface)
	}
	return nil
}

func (a *app) requireLogin() error {
	if !a.client.Session().IsLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
