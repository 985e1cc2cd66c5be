// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-username-changer/internal/adapter"
	"github.com/MKhiriev/go-username-changer/internal/app"
	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/service"
)

// defaultTokenTTL is the lifetime of tokens minted by the token command.
const defaultTokenTTL = time.Hour

const usage = `usage:
  username-changer [flags] list
  username-changer [flags] get <user-id>
  username-changer [flags] allowed <user-id>
  username-changer [flags] rename <current-login> <new-login>
  username-changer [flags] token <user-id> [ttl]
  username-changer [flags] version`

// App runs admin sub-commands. Either dependency may be nil when the
// configured command does not need it.
type App struct {
	server adapter.ServerAdapter
	auth   service.AuthService

	out    io.Writer
	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, auth service.AuthService, out io.Writer, logger *logger.Logger) *App {
	return &App{server: server, auth: auth, out: out, logger: logger}
}

// Run executes the sub-command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ErrWrongArgs
	}

	command, operands := args[0], args[1:]
	if command != config.TokenCommand && a.server == nil {
		return ErrNoServerAdapter
	}

	switch command {
	case "list":
		return a.list(ctx, operands)
	case "get":
		return a.get(ctx, operands)
	case "allowed":
		return a.allowed(ctx, operands)
	case "rename":
		return a.rename(ctx, operands)
	case "version":
		return a.version(ctx, operands)
	case config.TokenCommand:
		return a.token(ctx, operands)
	default:
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) list(ctx context.Context, operands []string) error {
	if len(operands) != 0 {
		return ErrWrongArgs
	}

	users, err := a.server.ListUsers(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLOGIN\tSLUG\tDISPLAY NAME")
	for _, user := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", user.UserID, user.Login, user.Slug, user.DisplayName)
	}
	return tw.Flush()
}

func (a *App) get(ctx context.Context, operands []string) error {
	userID, err := userIDOperand(operands)
	if err != nil {
		return err
	}

	user, err := a.server.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%d\n", user.UserID)
	fmt.Fprintf(tw, "Login\t%s\n", user.Login)
	fmt.Fprintf(tw, "Slug\t%s\n", user.Slug)
	fmt.Fprintf(tw, "Display name\t%s\n", user.DisplayName)
	fmt.Fprintf(tw, "Email\t%s\n", user.Email)
	return tw.Flush()
}

func (a *App) allowed(ctx context.Context, operands []string) error {
	userID, err := userIDOperand(operands)
	if err != nil {
		return err
	}

	allowed, err := a.server.RenameAllowed(ctx, userID)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, strconv.FormatBool(allowed))
	return nil
}

func (a *App) rename(ctx context.Context, operands []string) error {
	if len(operands) != 2 {
		return ErrWrongArgs
	}

	resp, err := a.server.RenameUser(ctx, operands[0], operands[1])
	if err != nil {
		return err
	}

	message := resp.Message
	if message == "" {
		message = fmt.Sprintf(app.MsgRenameSucceeded, resp.PreviousLogin, resp.User.Login)
	}
	fmt.Fprintln(a.out, message)
	if resp.Warning != "" {
		fmt.Fprintln(a.out, "warning:", resp.Warning)
	}

	return nil
}

func (a *App) version(ctx context.Context, operands []string) error {
	if len(operands) != 0 {
		return ErrWrongArgs
	}

	version, err := a.server.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, version)
	return nil
}

func (a *App) token(ctx context.Context, operands []string) error {
	if a.auth == nil {
		return ErrNoTokenIssuer
	}
	if len(operands) == 0 || len(operands) > 2 {
		return ErrWrongArgs
	}

	userID, err := userIDOperand(operands[:1])
	if err != nil {
		return err
	}

	ttl := defaultTokenTTL
	if len(operands) == 2 {
		ttl, err = time.ParseDuration(operands[1])
		if err != nil || ttl <= 0 {
			return fmt.Errorf("invalid token ttl %q", operands[1])
		}
	}

	token, err := a.auth.CreateToken(ctx, userID, ttl)
	if err != nil {
		return err
	}

	a.logger.Debug().Int64("user_id", userID).Dur("ttl", ttl).Msg("token issued")
	fmt.Fprintln(a.out, token.String())
	return nil
}

func userIDOperand(operands []string) (int64, error) {
	if len(operands) != 1 {
		return 0, ErrWrongArgs
	}

	userID, err := strconv.ParseInt(operands[0], 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, operands[0])
	}
	return userID, nil
}
