package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/dto"
	"github.com/ecopay/ecopay/internal/service/projectservice"
	"github.com/ecopay/ecopay/pkg/auth"
	"github.com/ecopay/ecopay/pkg/utils"
)

//go:generate mockgen -source=projects.go -destination=mock_projects.go -package=projects

type Service interface {
	List(ctx context.Context) ([]domain.CarbonProject, error)
	Create(ctx context.Context, req dto.ProjectRequestDTO) (*domain.CarbonProject, error)
	Offset(ctx context.Context, userID string, req dto.OffsetRequestDTO) (*dto.OffsetResponseDTO, error)
}

type ProjectHandler struct {
	projectService Service
}

func New(projectService Service) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// GetProjects godoc
//
//	@Summary		List carbon projects
//	@Description	The list is wrapped in a data envelope.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ListResponseDTO[domain.CarbonProject]
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/proxy-api/projects [get]
func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	if projects == nil {
		projects = []domain.CarbonProject{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListResponseDTO[domain.CarbonProject]{Data: projects})
}

// PostProject godoc
//
//	@Summary		Create a project or offset an existing one
//	@Description	A body carrying projectId funds that project; any other body creates a project.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OffsetRequestDTO	true	"Offset or dto.ProjectRequestDTO"
//	@Success		200		{object}	dto.OffsetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Project not found"
//	@Failure		409		{object}	utils.Response	"Project closed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/proxy-api/projects [post]
func (h *ProjectHandler) PostProject(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var probe struct {
		ProjectID *string `json:"projectId"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if probe.ProjectID != nil {
		h.offset(w, r, body)
		return
	}
	h.create(w, r, body)
}

func (h *ProjectHandler) create(w http.ResponseWriter, r *http.Request, body []byte) {
	var req dto.ProjectRequestDTO
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, projectservice.ErrInvalidName):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) offset(w http.ResponseWriter, r *http.Request, body []byte) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.OffsetRequestDTO
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.projectService.Offset(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, projectservice.ErrInvalidProject),
			errors.Is(err, projectservice.ErrInvalidCurrency),
			errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Project not found")
		case errors.Is(err, projectservice.ErrProjectClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient balance")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
