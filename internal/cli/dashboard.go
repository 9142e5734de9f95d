package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ecopay/ecopay/internal/api"
	"github.com/ecopay/ecopay/internal/domain"
	"golang.org/x/sync/errgroup"
)

const retryHint = `run "ecopay dashboard" to retry`

// dashboard loads every section concurrently. A failed section does not
// stop the others.
func dashboard(ctx context.Context, e *env, _ []string) error {
	var (
		user     api.Result[domain.User]
		txs      api.Result[[]domain.Transaction]
		goals    api.Result[[]domain.SavingsGoal]
		projects api.Result[[]domain.CarbonProject]
	)

	var g errgroup.Group
	g.Go(func() error {
		user = e.api.GetUserProfile(ctx)
		return user.Err()
	})
	g.Go(func() error {
		txs = e.api.GetTransactions(ctx)
		return txs.Err()
	})
	g.Go(func() error {
		goals = e.api.GetSavings(ctx)
		return goals.Err()
	})
	g.Go(func() error {
		projects = e.api.GetAllProjects(ctx)
		return projects.Err()
	})
	err := g.Wait()

	section(e.stdout, "Profile", user, printProfile)
	section(e.stdout, "Transactions", txs, func(w io.Writer, txs []domain.Transaction) {
		printTransactions(w, txs)
		fmt.Fprintf(w, "Total footprint: %s\n", co2(totalFootprint(txs)))
	})
	section(e.stdout, "Savings", goals, printSavings)
	section(e.stdout, "Carbon projects", projects, printProjects)

	if err != nil {
		return fmt.Errorf("dashboard incomplete: %w", err)
	}
	return nil
}

func section[T any](w io.Writer, title string, res api.Result[T], render func(io.Writer, T)) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
	if !res.Success {
		fmt.Fprintf(w, "Could not load: %s (%s)\n", res.Error, retryHint)
		return
	}
	render(w, res.Data)
}

func totalFootprint(txs []domain.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		if tx.CarbonFootprint != nil {
			total += *tx.CarbonFootprint
		}
	}
	return total
}
