package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/ecopay/ecopay/internal/carbon"
	"github.com/ecopay/ecopay/internal/domain"
	"github.com/shopspring/decimal"
)

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func co2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + " kg CO2e"
}

// parseAmount accepts any non-negative number.
func parseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return d.InexactFloat64(), nil
}

func printProfile(w io.Writer, user domain.User) {
	fmt.Fprintf(w, "Name:    %s\n", user.Name)
	fmt.Fprintf(w, "Email:   %s\n", user.Email)
	fmt.Fprintf(w, "Balance: %s\n", strconv.FormatInt(user.Balance, 10))
	if user.WalletAddress != "" {
		fmt.Fprintf(w, "Wallet:  %s\n", user.WalletAddress)
	}
}

func printTransactions(w io.Writer, txs []domain.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(w, "No transactions yet")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tAMOUNT\tDESCRIPTION\tCATEGORY\tCO2\tTIME")
	for _, tx := range txs {
		footprint := "-"
		if tx.CarbonFootprint != nil {
			footprint = co2(*tx.CarbonFootprint)
		}
		category := "-"
		if tx.Category != "" {
			category = carbon.Lookup(tx.Category).Label
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", tx.Type, money(tx.Amount), tx.Description, category, footprint, tx.Time)
	}
	tw.Flush()
}

func printSavings(w io.Writer, goals []domain.SavingsGoal) {
	if len(goals) == 0 {
		fmt.Fprintln(w, "No savings goals yet")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSAVED\tTARGET\tPROGRESS\tDEADLINE")
	for _, g := range goals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.0f%%\t%s\n", g.ID, g.Name, money(g.Current), money(g.Target), g.Progress()*100, g.Deadline)
	}
	tw.Flush()
}

func printProjects(w io.Writer, projects []domain.CarbonProject) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No carbon projects yet")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tIMPACT")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Status, p.Impact)
	}
	tw.Flush()
}
