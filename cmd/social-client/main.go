package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/jrsteele09/go-social-client/credentials"
	"github.com/jrsteele09/go-social-client/credentials/sqliterepo"
	"github.com/jrsteele09/go-social-client/gateway"
	"github.com/jrsteele09/go-social-client/internal/config"
	"github.com/jrsteele09/go-social-client/internal/logging"
	"github.com/jrsteele09/go-social-client/internal/terminal"
	"github.com/jrsteele09/go-social-client/router"
	"github.com/jrsteele09/go-social-client/session"
	"github.com/jrsteele09/go-social-client/views"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (environment variables take precedence)")
	location := flag.String("open", "", "location to open first, e.g. #/feed")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using environment variables")
	}

	if err := run(*configPath, *location); err != nil {
		log.Err(err).Msg("Social client stopped")
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.New(), nil
	}
	return config.NewFromFile(path)
}

func run(configPath, location string) error {
	c, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, c.GetLogLevel())
	displayAppname(c.GetAppName())

	repo, err := sqliterepo.New(c.GetCredentialsPath())
	if err != nil {
		return err
	}
	defer repo.Close()

	store, err := credentials.New(repo)
	if err != nil {
		return err
	}
	api, err := gateway.New(c.GetAPIBaseURL(), store,
		gateway.WithAPIKeyHeader(c.GetAPIKeyHeader()),
		gateway.WithTimeout(c.GetRequestTimeout()),
	)
	if err != nil {
		return err
	}
	manager, err := session.New(store, api)
	if err != nil {
		return err
	}
	viewSet, err := views.New(api, manager, views.WithProfilePostsLimit(c.GetProfilePostsLimit()))
	if err != nil {
		return err
	}

	renderer := terminal.NewRenderer(os.Stdout)
	r, err := router.New(manager, viewSet, renderer)
	if err != nil {
		return err
	}

	host := terminal.NewHost(r, renderer, terminal.NewPrompter(os.Stdin, os.Stdout), os.Stdout)
	host.Command("whoami", func(context.Context) { whoami(manager) })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug().Str("api", c.GetAPIBaseURL()).Msg("Starting")
	r.Start(ctx, location)
	return host.Run(ctx)
}

func whoami(manager *session.Manager) {
	info := manager.TokenInfo()
	if info == nil {
		fmt.Println("Not logged in.")
		return
	}
	status := "valid until " + info.ExpiresAt.Local().Format(time.RFC1123)
	if info.Expired {
		status = "expired"
	}
	fmt.Printf("%s (%s), token %s\n", info.Name, info.Subject, status)
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
