package savings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/dto"
	"github.com/ecopay/ecopay/internal/service/savingsservice"
	"github.com/ecopay/ecopay/pkg/auth"
	"github.com/ecopay/ecopay/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=savings.go -destination=mock_savings.go -package=savings

type Service interface {
	List(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
	Create(ctx context.Context, userID string, req dto.SavingsRequestDTO) (*domain.SavingsGoal, error)
	AddMoney(ctx context.Context, userID, savingsID string, amount float64) (*domain.SavingsGoal, error)
}

type SavingsHandler struct {
	savingsService Service
}

func New(savingsService Service) *SavingsHandler {
	return &SavingsHandler{
		savingsService: savingsService,
	}
}

// GetSavings godoc
//
//	@Summary		List savings goals
//	@Description	The list is wrapped in a data envelope.
//	@Tags			Savings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ListResponseDTO[domain.SavingsGoal]
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/proxy-api/savings [get]
func (h *SavingsHandler) GetSavings(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goals, err := h.savingsService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch savings")
		return
	}
	if goals == nil {
		goals = []domain.SavingsGoal{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListResponseDTO[domain.SavingsGoal]{Data: goals})
}

// CreateSavings godoc
//
//	@Summary		Create a savings goal
//	@Tags			Savings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SavingsRequestDTO	true	"Goal"
//	@Success		200		{object}	domain.SavingsGoal
//	@Failure		400		{object}	utils.Response	"Invalid goal"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/proxy-api/savings [post]
func (h *SavingsHandler) CreateSavings(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SavingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.savingsService.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, savingsservice.ErrInvalidName),
			errors.Is(err, savingsservice.ErrInvalidDeadline),
			errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, goal)
}

// AddSavings godoc
//
//	@Summary		Add money to a savings goal
//	@Tags			Savings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Savings goal ID"
//	@Param			request	body		dto.AddSavingsRequestDTO	true	"Amount"
//	@Success		200		{object}	domain.SavingsGoal
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Savings goal not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/proxy-api/savings/{id} [put]
func (h *SavingsHandler) AddSavings(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.AddSavingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.savingsService.AddMoney(r.Context(), userID, chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Savings goal not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, goal)
}
