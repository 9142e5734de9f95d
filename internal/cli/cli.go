// Package cli is the ecopay command line front end.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/ecopay/ecopay/internal/api"
	"github.com/ecopay/ecopay/internal/config"
	"github.com/ecopay/ecopay/internal/session"
	"github.com/ecopay/ecopay/pkg/clients"
	"github.com/ecopay/ecopay/pkg/logger"
	"go.uber.org/zap"
)

const sessionExpiredMessage = `session expired, please run "ecopay login"`

var ErrUnknownCommand = errors.New("unknown command")

type command struct {
	usage string
	run   func(ctx context.Context, e *env, args []string) error
}

var commands = map[string]command{
	"login":        {usage: "login [-email e] [-password p]", run: login},
	"register":     {usage: "register -name n -email e [-password p]", run: register},
	"logout":       {usage: "logout", run: logout},
	"profile":      {usage: "profile", run: profile},
	"transactions": {usage: "transactions", run: transactions},
	"topup":        {usage: "topup <amount>", run: topUp},
	"wallet":       {usage: "wallet <address>", run: connectWallet},
	"estimate":     {usage: "estimate <amount> [category]", run: estimate},
	"savings":      {usage: "savings [create -name n -target t -due yyyy-mm-dd | add <id> <amount>]", run: savings},
	"projects":     {usage: "projects [create -name n -description d -impact i | offset -project id -amount a]", run: projects},
	"transfer":     {usage: "transfer", run: transferCmd},
	"dashboard":    {usage: "dashboard", run: dashboard},
}

// env is what a command runs against.
type env struct {
	cfg    *config.Config
	api    *api.Service
	in     *bufio.Reader
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Run parses the global flags, opens the session and runs one command.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ecopay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fs) }

	cfg, err := config.Parse(fs, args)
	if err != nil {
		return err
	}
	if fs.NArg() == 0 {
		printUsage(stderr, fs)
		return flag.ErrHelp
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		printUsage(stderr, fs)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if err := logger.InitLogger(cfg, logger.ForCLI()); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	store, closeStore, err := session.Open(cfg.SessionPath)
	if err != nil {
		return fmt.Errorf("can't open session: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			zap.L().Error("failed to close session", zap.Error(err))
		}
	}()

	client := clients.NewHTTPClient(
		clients.WithBaseURL(cfg.APIBaseURL),
		clients.WithTokenSource(store),
		clients.WithTimeout(cfg.RequestTimeout),
		clients.OnUnauthorized(expiredNotice(stderr)),
	)

	e := &env{
		cfg:    cfg,
		api:    api.New(client, store),
		in:     bufio.NewReader(stdin),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	return cmd.run(ctx, e, fs.Args()[1:])
}

// expiredNotice tells the user once per run that the session is gone.
// Failed sign-in and sign-up attempts are not an expired session.
func expiredNotice(w io.Writer) clients.UnauthorizedHandler {
	var once sync.Once
	return func(path string) {
		if strings.HasPrefix(path, "/auth/signin") || strings.HasPrefix(path, "/auth/signup") {
			return
		}
		once.Do(func() {
			fmt.Fprintln(w, sessionExpiredMessage)
		})
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: ecopay [flags] <command> [args]")
	fmt.Fprintln(w, "\nCommands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}

	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}

// subFlags builds the flag set of a subcommand writing errors to stderr.
func subFlags(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}
