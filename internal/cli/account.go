package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecopay/ecopay/internal/carbon"
)

func profile(ctx context.Context, e *env, _ []string) error {
	res := e.api.GetUserProfile(ctx)
	if !res.Success {
		return res.Err()
	}
	printProfile(e.stdout, res.Data)
	return nil
}

func transactions(ctx context.Context, e *env, _ []string) error {
	res := e.api.GetTransactions(ctx)
	if !res.Success {
		return res.Err()
	}
	printTransactions(e.stdout, res.Data)
	return nil
}

func topUp(ctx context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: ecopay topup <amount>")
	}
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}

	res := e.api.AddUserBalance(ctx, amount)
	if !res.Success {
		return res.Err()
	}
	fmt.Fprintf(e.stdout, "New balance: %s\n", money(res.Data.Balance))
	return nil
}

func connectWallet(ctx context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: ecopay wallet <address>")
	}

	res := e.api.ConnectWallet(ctx, args[0])
	if !res.Success {
		return res.Err()
	}
	if !res.Data.Connected {
		return errors.New("wallet was not connected")
	}
	fmt.Fprintf(e.stdout, "Wallet %s connected\n", args[0])
	return nil
}

// estimate works offline.
func estimate(_ context.Context, e *env, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: ecopay estimate <amount> [category]")
	}
	category := carbon.Default
	if len(args) == 2 {
		category = args[1]
	}

	est, ok := carbon.FromInput(args[0], category)
	if !ok {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	fmt.Fprintf(e.stdout, "%s: %s\n", est.Category, co2(est.CO2Emission))
	fmt.Fprintln(e.stdout, est.Description)
	return nil
}
