// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-openpims/internal/adapter"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

const usage = `usage: openpims-client [flags] [command]

commands:
  (none)                          interactive popup
  status                          print agent status
  login <server-url> <email>      log in; password from OPENPIMS_PASSWORD
  logout                          log out and purge rules
  derive <domain>                 print the pseudonym URL of domain
  observe <domain>                install the header rule for domain
  get-url                         print the synced global URL
  set-url <url>                   set the synced global URL
  fetch <url>                     load url with the header and cookie the agent injects
`

// PasswordEnv holds the password used by the login subcommand.
const PasswordEnv = "OPENPIMS_PASSWORD"

type App struct {
	agent   adapter.AgentAdapter
	ui      UI
	fetcher *Fetcher
	args    []string
	out     io.Writer

	logger *logger.Logger
}

// NewApp assembles the client. A nil fetcher is replaced by one sending
// through agent over http.DefaultTransport.
func NewApp(agent adapter.AgentAdapter, ui UI, fetcher *Fetcher, args []string, log *logger.Logger) *App {
	if fetcher == nil {
		fetcher = NewFetcher(agent, nil, log)
	}
	return &App{agent: agent, ui: ui, fetcher: fetcher, args: args, out: os.Stdout, logger: log}
}

func (a *App) Run(ctx context.Context) error {
	if len(a.args) == 0 {
		return a.ui.Run(ctx)
	}

	cmd, args := a.args[0], a.args[1:]
	switch cmd {
	case "status":
		return a.send(ctx, models.Message{Action: models.ActionStatus})
	case "login":
		if len(args) < 2 {
			return fmt.Errorf("%w: login <server-url> <email>", ErrMissingArgs)
		}
		return a.send(ctx, models.Message{
			Action:    models.ActionLogin,
			ServerURL: args[0],
			Email:     args[1],
			Password:  os.Getenv(PasswordEnv),
		})
	case "logout":
		return a.send(ctx, models.Message{Action: models.ActionLogout})
	case "derive", "observe":
		if len(args) < 1 {
			return fmt.Errorf("%w: %s <domain>", ErrMissingArgs, cmd)
		}
		return a.send(ctx, models.Message{Action: cmd, Domain: args[0]})
	case "get-url":
		return a.send(ctx, models.Message{Action: models.ActionGetURL})
	case "set-url":
		if len(args) < 1 {
			return fmt.Errorf("%w: set-url <url>", ErrMissingArgs)
		}
		return a.send(ctx, models.Message{Action: models.ActionSetURL, URL: args[0]})
	case "fetch":
		if len(args) < 1 {
			return fmt.Errorf("%w: fetch <url>", ErrMissingArgs)
		}
		return a.fetch(ctx, args[0])
	case "help", "-h", "--help":
		_, err := io.WriteString(a.out, usage)
		return err
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, cmd, strings.TrimRight(usage, "\n"))
	}
}

func (a *App) send(ctx context.Context, msg models.Message) error {
	resp, err := a.agent.Send(ctx, msg)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s", ErrAgentRejected, resp.Error)
	}

	if resp.Data == nil {
		_, err = fmt.Fprintln(a.out, "ok")
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp.Data)
}

func (a *App) fetch(ctx context.Context, rawURL string) error {
	res, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "status:      %d\n", res.Status)
	fmt.Fprintf(a.out, "x-openpims:  %s\n", orDash(res.Header))
	fmt.Fprintf(a.out, "cookie:      %s\n", orDash(res.Cookie))
	fmt.Fprintf(a.out, "rules:       %d\n", res.Rules)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
