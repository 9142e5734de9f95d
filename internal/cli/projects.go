package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/ecopay/ecopay/internal/dto"
)

func projects(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		res := e.api.GetAllProjects(ctx)
		if !res.Success {
			return res.Err()
		}
		printProjects(e.stdout, res.Data)
		return nil
	}

	switch args[0] {
	case "create":
		return createProject(ctx, e, args[1:])
	case "offset":
		return offsetProject(ctx, e, args[1:])
	default:
		return fmt.Errorf("%w: projects %s", ErrUnknownCommand, args[0])
	}
}

func createProject(ctx context.Context, e *env, args []string) error {
	fs := subFlags(e, "projects create")
	var req dto.ProjectRequestDTO
	fs.StringVar(&req.Name, "name", "", "project name")
	fs.StringVar(&req.Description, "description", "", "project description")
	fs.StringVar(&req.Impact, "impact", "", "expected impact")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.Name == "" {
		return errors.New("a project name is required")
	}

	res := e.api.CreateProject(ctx, req)
	if !res.Success {
		return res.Err()
	}
	fmt.Fprintf(e.stdout, "Project %q created with id %s\n", res.Data.Name, res.Data.ID)
	return nil
}

func offsetProject(ctx context.Context, e *env, args []string) error {
	fs := subFlags(e, "projects offset")
	projectID := fs.String("project", "", "project id")
	amount := fs.Float64("amount", 0, "amount to fund")
	currency := fs.String("currency", string(dto.CurrencyCUSD), "cUSD or cEUR")
	var offset optionalFloat
	fs.Var(&offset, "co2", "CO2 offset in kg, optional")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *projectID == "" {
		return errors.New("a project id is required")
	}

	res := e.api.OffsetProject(ctx, dto.OffsetRequestDTO{
		ProjectID: *projectID,
		Amount:    *amount,
		Currency:  dto.Currency(*currency),
		CO2Offset: offset.value,
	})
	if !res.Success {
		return res.Err()
	}
	fmt.Fprintf(e.stdout, "Offset recorded with id %s\n", res.Data.OffsetID)
	return nil
}

// optionalFloat is a float flag that stays nil unless set.
type optionalFloat struct {
	value *float64
}

var _ flag.Value = (*optionalFloat)(nil)

func (f *optionalFloat) String() string {
	if f == nil || f.value == nil {
		return ""
	}
	return money(*f.value)
}

func (f *optionalFloat) Set(s string) error {
	v, err := parseAmount(s)
	if err != nil {
		return err
	}
	f.value = &v
	return nil
}
