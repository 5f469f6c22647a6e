package main

import (
	"context"
	"encoding/gob"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tsnews/newsdesk/internal/backfill"
	"github.com/tsnews/newsdesk/internal/config"
	db "github.com/tsnews/newsdesk/internal/db/impl"
	"github.com/tsnews/newsdesk/internal/events"
	"github.com/tsnews/newsdesk/internal/initialization"
	"github.com/tsnews/newsdesk/internal/mailer"
	service "github.com/tsnews/newsdesk/internal/service/impl"
	"github.com/tsnews/newsdesk/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:           "newsdesk",
		Short:         "News site backend with registration and reader activity tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCommand(), backfillCommand())

	if err := root.Execute(); err != nil {
		zero.Fatal().Err(err).Send()
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func backfillCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill-titles",
		Short: "Copy the title of every news article without a display title",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfig()
			if err != nil {
				return err
			}

			d, err := initialization.OpenDB(cfg.DbUrl)
			if err != nil {
				return err
			}
			defer d.Close()

			runner := backfill.Runner{DB: db.New(cfg, d)}
			n, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "backfilled %d article(s)\n", n)
			return nil
		},
	}
}

func serve() error {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal(err)
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	d, err := initialization.OpenDB(cfg.DbUrl)
	if err != nil {
		log.Fatal(err)
	}
	zero.Info().Msg("database connection established")

	q, err := initialization.InitQueue(&cfg)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to connect with backlite database")
		os.Exit(1)
	}

	if os.Getenv("SETUP") != "" {
		err = initialization.SetupDB(&cfg, d, cfg.MigrationsFolder, cfg.DbUrl)
		if err != nil {
			log.Fatal(err)
		}
	}

	gob.Register(web.Session{})
	manager := scs.NewCookieManager(cfg.SessionKey)
	manager.Lifetime(cfg.SessionLifetime)

	ctx := context.Background()
	m := mailer.New(ctx, q, &mailer.SmtpSender{Addr: cfg.SmtpAddr, From: cfg.SmtpFrom})

	dd := db.New(cfg, d)
	s := service.New(cfg, dd, m, events.NewBus())

	handler := web.New(&cfg, s, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	zero.Info().Uint16("port", cfg.Port).Msg("started server")
	return server.ListenAndServe()
}
