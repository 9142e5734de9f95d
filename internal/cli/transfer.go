package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecopay/ecopay/internal/carbon"
	"github.com/ecopay/ecopay/internal/transfer"
)

// transferCmd walks the user through details, confirmation and success.
func transferCmd(ctx context.Context, e *env, _ []string) error {
	flow := transfer.New(e.api, transfer.OnComplete(func() {
		if res := e.api.GetUserProfile(ctx); res.Success {
			fmt.Fprintf(e.stdout, "Balance: %d\n", res.Data.Balance)
		}
	}))
	if err := flow.Open(); err != nil {
		return err
	}
	defer func() { _ = flow.Cancel() }()

	for {
		if err := e.fillDetails(ctx, flow); err != nil {
			return err
		}
		if !flow.Proceed() {
			fmt.Fprintf(e.stdout, "Cannot continue: %s\n", flow.Hint())
			continue
		}

		back, err := e.confirm(ctx, flow)
		if err != nil || !back {
			return err
		}
	}
}

func (e *env) fillDetails(ctx context.Context, flow *transfer.Workflow) error {
	in := flow.Input()

	recipient, err := e.ask("Recipient", in.Recipient)
	if err != nil {
		return err
	}
	if err := flow.SetRecipient(recipient); err != nil {
		return err
	}

	amount, err := e.ask("Amount", in.Amount)
	if err != nil {
		return err
	}
	if err := flow.SetAmount(amount); err != nil {
		return err
	}

	values := make([]string, 0, len(carbon.Categories()))
	for _, c := range carbon.Categories() {
		values = append(values, c.Value)
	}
	fmt.Fprintf(e.stdout, "Categories: %s\n", strings.Join(values, ", "))
	category, err := e.ask("Category", in.Category)
	if err != nil {
		return err
	}
	if err := flow.SetCategory(strings.ToLower(category)); err != nil {
		return err
	}

	description, err := e.ask("Description (optional)", in.Description)
	if err != nil {
		return err
	}
	if err := flow.SetDescription(description); err != nil {
		return err
	}

	if err := flow.WaitEstimate(ctx); err != nil {
		return err
	}
	if est, ok := flow.Estimate(); ok {
		fmt.Fprintf(e.stdout, "Estimated footprint: %s (%s)\n", co2(est.CO2Emission), est.Category)
	}
	return nil
}

// confirm shows the snapshot until the user sends, cancels or goes back.
// back is true when the details step should run again.
func (e *env) confirm(ctx context.Context, flow *transfer.Workflow) (back bool, err error) {
	snap, _ := flow.Snapshot()
	fmt.Fprintln(e.stdout, "\nConfirm transfer")
	fmt.Fprintf(e.stdout, "  To:          %s\n", snap.Recipient)
	fmt.Fprintf(e.stdout, "  Amount:      %s\n", money(snap.Amount))
	fmt.Fprintf(e.stdout, "  Description: %s\n", snap.Description)
	fmt.Fprintf(e.stdout, "  Footprint:   %s (%s)\n", co2(snap.Estimate.CO2Emission), snap.Estimate.Category)

	label := "Send? (y)es, (n)o, (b)ack"
	for {
		answer, err := e.ask(label, "y")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			if err := flow.Submit(ctx); err != nil {
				if !errors.Is(err, transfer.ErrTransferFailed) {
					return false, err
				}
				fmt.Fprintf(e.stdout, "Transfer failed: %s\n", flow.LastError())
				label = "Retry? (y)es, (n)o, (b)ack"
				continue
			}
			tx, _ := flow.Transaction()
			fmt.Fprintf(e.stdout, "Transfer sent (id %s)\n", tx.ID)
			return false, flow.Close()
		case "n", "no":
			fmt.Fprintln(e.stdout, "Transfer cancelled")
			return false, flow.Cancel()
		case "b", "back":
			return true, flow.Back()
		default:
			fmt.Fprintln(e.stdout, "Please answer y, n or b")
		}
	}
}
