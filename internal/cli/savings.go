package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecopay/ecopay/internal/dto"
)

func savings(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		res := e.api.GetSavings(ctx)
		if !res.Success {
			return res.Err()
		}
		printSavings(e.stdout, res.Data)
		return nil
	}

	switch args[0] {
	case "create":
		return createSavings(ctx, e, args[1:])
	case "add":
		return addSavings(ctx, e, args[1:])
	default:
		return fmt.Errorf("%w: savings %s", ErrUnknownCommand, args[0])
	}
}

func createSavings(ctx context.Context, e *env, args []string) error {
	fs := subFlags(e, "savings create")
	name := fs.String("name", "", "goal name")
	target := fs.Float64("target", 0, "target amount")
	due := fs.String("due", "", "deadline as yyyy-mm-dd")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("a goal name is required")
	}

	res := e.api.CreateSavings(ctx, dto.SavingsRequestDTO{Name: *name, Target: *target, Due: *due})
	if !res.Success {
		return res.Err()
	}
	fmt.Fprintf(e.stdout, "Savings goal %q created with id %s\n", res.Data.Name, res.Data.ID)
	return nil
}

func addSavings(ctx context.Context, e *env, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: ecopay savings add <id> <amount>")
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	res := e.api.AddSavingsMoney(ctx, args[0], amount)
	if !res.Success {
		return res.Err()
	}
	goal := res.Data
	fmt.Fprintf(e.stdout, "%s: %s of %s saved (%.0f%%)\n", goal.Name, money(goal.Current), money(goal.Target), goal.Progress()*100)
	return nil
}
