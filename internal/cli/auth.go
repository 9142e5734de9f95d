package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecopay/ecopay/internal/dto"
)

var ErrMissingCredentials = errors.New("email and password are required")

func login(ctx context.Context, e *env, args []string) error {
	fs := subFlags(e, "login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "password, prompted when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if *email == "" {
		if *email, err = e.ask("Email", ""); err != nil {
			return err
		}
	}
	if *password == "" {
		if *password, err = e.readPassword("Password"); err != nil {
			return err
		}
	}
	if strings.TrimSpace(*email) == "" || *password == "" {
		return ErrMissingCredentials
	}

	res := e.api.Login(ctx, dto.LoginRequestDTO{Email: *email, Password: *password})
	if !res.Success {
		return res.Err()
	}
	fmt.Fprintf(e.stdout, "Welcome back, %s\n", res.Data.Name)
	return nil
}

func register(ctx context.Context, e *env, args []string) error {
	fs := subFlags(e, "register")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "password, prompted when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *email == "" {
		return errors.New("name and email are required")
	}
	if *password == "" {
		var err error
		if *password, err = e.readPassword("Password"); err != nil {
			return err
		}
	}
	if *password == "" {
		return ErrMissingCredentials
	}

	res := e.api.Register(ctx, dto.RegisterRequestDTO{FullName: *name, Email: *email, Password: *password})
	if !res.Success {
		return res.Err()
	}
	fmt.Fprintf(e.stdout, "Account created for %s\n", res.Data.Email)
	return nil
}

func logout(_ context.Context, e *env, _ []string) error {
	if err := e.api.Logout(); err != nil {
		return fmt.Errorf("can't clear session: %w", err)
	}
	fmt.Fprintln(e.stdout, "Logged out")
	return nil
}
