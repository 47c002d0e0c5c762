package newsletter

import (
	"context"
	"net/http"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/dto"
	"github.com/wearshop/investmart/pkg/utils"
)

type Service interface {
	GetPublished(ctx context.Context) ([]domain.NewsletterArticle, error)
}

type NewsletterHandler struct {
	newsletterService Service
}

func New(newsletterService Service) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
	}
}

func ToResponseDTO(a *domain.NewsletterArticle) dto.ArticleResponseDTO {
	return dto.ArticleResponseDTO{
		ID:          a.ID.String(),
		Title:       a.Title,
		Content:     a.Content,
		IsPublished: a.IsPublished,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
	}
}

// GetPublished godoc
//
//	@Summary	List published newsletter articles
//	@Tags		Newsletter
//	@Produce	json
//	@Success	200	{array}		dto.ArticleResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/newsletter [get]
func (h *NewsletterHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	articles, err := h.newsletterService.GetPublished(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}

	response := make([]dto.ArticleResponseDTO, len(articles))
	for i := range articles {
		response[i] = ToResponseDTO(&articles[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
