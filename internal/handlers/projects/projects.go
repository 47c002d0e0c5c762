package projects

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/dto"
	"github.com/wearshop/investmart/internal/service/projectservice"
	"github.com/wearshop/investmart/pkg/utils"
)

type Service interface {
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetInvestable(ctx context.Context) ([]domain.Project, error)
	GetActive(ctx context.Context) ([]domain.Project, error)
}

type ProjectHandler struct {
	projectService Service
}

func New(projectService Service) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

func ToResponseDTO(p *domain.Project) dto.ProjectResponseDTO {
	return dto.ProjectResponseDTO{
		ID:                  p.ID.String(),
		Name:                p.Name,
		ShortDescription:    p.ShortDescription,
		DetailedDescription: p.DetailedDescription,
		Location:            p.Location,
		Category:            p.Category,
		ImageURL:            p.ImageURL,
		TargetAmount:        p.TargetAmount,
		CollectedAmount:     p.CollectedAmount,
		MinAmount:           p.MinAmount,
		ReturnRate:          p.ReturnRate,
		Status:              p.Status,
		Progress:            projectservice.Progress(p.CollectedAmount, p.TargetAmount),
		RemainingAmount:     projectservice.RemainingAmount(p),
		ImplementationDate:  p.ImplementationDate,
		EndDate:             p.EndDate,
		CreatedAt:           p.CreatedAt,
	}
}

func toResponseList(projects []domain.Project) []dto.ProjectResponseDTO {
	response := make([]dto.ProjectResponseDTO, len(projects))
	for i := range projects {
		response[i] = ToResponseDTO(&projects[i])
	}
	return response
}

// GetInvestable godoc
//
//	@Summary		List investable projects
//	@Description	Active projects currently collecting funds
//	@Tags			Projects
//	@Produce		json
//	@Success		200	{array}		dto.ProjectResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/projects [get]
func (h *ProjectHandler) GetInvestable(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetInvestable(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseList(projects))
}

// GetActive godoc
//
//	@Summary		List all active projects
//	@Tags			Projects
//	@Produce		json
//	@Param			status	query		string	false	"Filter by project status"
//	@Success		200		{array}		dto.ProjectResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/projects/all [get]
func (h *ProjectHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetActive(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filtered := projects[:0]
		for _, p := range projects {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseList(projects))
}

// GetProject godoc
//
//	@Summary		Get project details
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		string	true	"Project id"
//	@Success		200	{object}	dto.ProjectResponseDTO
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/projects/{id} [get]
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, projectservice.ErrProjectNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ToResponseDTO(project))
}
