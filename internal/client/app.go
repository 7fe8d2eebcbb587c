package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/adapter"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

const usage = `usage: go-accounts-client [-a address] [-timeout d] [-token t] <command> [flags]

commands:
  register    -name -email -phone -country -state -city -password [-active] [-image]
  login       -identifier -password
  users       list all accounts
  user        -id
  update      -id [-name] [-email] [-phone] [-country] [-state] [-city] [-password] [-image]
  activate    -id
  deactivate  -id
  version
`

var _ Client = (*App)(nil)

type command func(ctx context.Context, args []string) error

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{adapter: serverAdapter, out: out, logger: logger}
	a.commands = map[string]command{
		"register":   a.register,
		"login":      a.login,
		"users":      a.listUsers,
		"user":       a.getUser,
		"update":     a.updateUser,
		"activate":   a.setActive(true),
		"deactivate": a.setActive(false),
		"version":    a.version,
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	if err := cmd(ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Commands returns the sorted names of all sub-commands.
func (a *App) Commands() []string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (a *App) register(ctx context.Context, args []string) error {
	var (
		req    models.RegisterRequest
		active bool
	)
	fs := newFlagSet("register")
	fs.StringVar(&req.Name, "name", "", "account name")
	fs.StringVar(&req.Email, "email", "", "e-mail address")
	fs.StringVar(&req.Phone, "phone", "", "phone number")
	fs.StringVar(&req.Country, "country", "", "country")
	fs.StringVar(&req.State, "state", "", "state")
	fs.StringVar(&req.City, "city", "", "city")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.ImagePath, "image", "", "image path")
	fs.BoolVar(&active, "active", true, "create the account active")
	if err := fs.Parse(args); err != nil {
		return err
	}

	createActive := models.OptionalBool(active)
	req.Active = &createActive

	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	var credentials models.Credentials
	fs := newFlagSet("login")
	fs.StringVar(&credentials.Identifier, "identifier", "", "e-mail or account name")
	fs.StringVar(&credentials.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) listUsers(ctx context.Context, _ []string) error {
	users, err := a.adapter.ListUsers(ctx)
	if err != nil {
		return err
	}
	return a.print(users)
}

func (a *App) getUser(ctx context.Context, args []string) error {
	fs := newFlagSet("user")
	id := fs.Int64("id", 0, "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return ErrMissingUserID
	}

	user, err := a.adapter.GetUser(ctx, *id)
	if err != nil {
		return err
	}
	return a.print(user)
}

// updateUser only sends the flags that were given on the command line.
func (a *App) updateUser(ctx context.Context, args []string) error {
	fs := newFlagSet("update")
	id := fs.Int64("id", 0, "user id")
	values := map[string]*string{}
	for _, name := range []string{"name", "email", "phone", "country", "state", "city", "password", "image"} {
		values[name] = fs.String(name, "", name)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return ErrMissingUserID
	}

	var update models.UserUpdate
	targets := map[string]**string{
		"name":     &update.Name,
		"email":    &update.Email,
		"phone":    &update.Phone,
		"country":  &update.Country,
		"state":    &update.State,
		"city":     &update.City,
		"password": &update.Password,
		"image":    &update.ImagePath,
	}
	fs.Visit(func(f *flag.Flag) {
		if target, ok := targets[f.Name]; ok {
			*target = values[f.Name]
		}
	})

	user, err := a.adapter.UpdateUser(ctx, *id, update)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) setActive(active bool) command {
	return func(ctx context.Context, args []string) error {
		fs := newFlagSet("active")
		id := fs.Int64("id", 0, "user id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id <= 0 {
			return ErrMissingUserID
		}

		user, err := a.adapter.SetActive(ctx, *id, active)
		if err != nil {
			return err
		}
		return a.print(user)
	}
}

func (a *App) version(ctx context.Context, _ []string) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, strings.TrimSpace(version))
	return err
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
