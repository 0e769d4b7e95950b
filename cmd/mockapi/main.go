package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/jrsteele09/go-social-client/gateway"
	"github.com/jrsteele09/go-social-client/internal/config"
	"github.com/jrsteele09/go-social-client/internal/logging"
	"github.com/jrsteele09/go-social-client/mockapi"
	"github.com/jrsteele09/go-social-client/users"
	fakeuserrepo "github.com/jrsteele09/go-social-client/users/repofake"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using environment variables")
	}

	for {
		if err := run(); err != nil {
			log.Err(err).Msg("Error running mock API")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("Mock API stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	logging.Setup(os.Stderr, c.GetLogLevel())
	displayAppname("Mock API")

	api, err := mockapi.New(c, fakeuserrepo.NewFakeUserRepo())
	if err != nil {
		return errors.Wrap(err, "[run] creating mock API")
	}
	if c.GetEnv() == "DEV" {
		if err := seed(api); err != nil {
			return err
		}
	}

	server := &http.Server{Addr: c.GetMockPort(), Handler: api}
	errs := make(chan error, 1)
	go func() { errs <- listenAndServe(server) }()

	select {
	case err := <-errs:
		return err
	case <-waitForStopSignal():
	}
	return shutdown(server)
}

// seed creates a demo account so the client can log in straight away
func seed(api *mockapi.Server) error {
	if err := api.SeedUser(users.User{Name: "demo_user", Email: "demo@stud.noroff.no", Bio: "Just here to test things."}, "password123"); err != nil {
		return errors.Wrap(err, "[seed] demo user")
	}
	api.SeedPost("demo_user", gateway.PostInput{
		Title: "Welcome",
		Body:  "This post lives in the mock API. Log in as demo@stud.noroff.no with password123.",
		Tags:  []string{"welcome"},
	})
	log.Info().Str("email", "demo@stud.noroff.no").Msg("Seeded demo user")
	return nil
}

func listenAndServe(server *http.Server) error {
	log.Info().Msgf("Mock API listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "server.ListenAndServe")
	}
	return nil
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server.Shutdown")
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
