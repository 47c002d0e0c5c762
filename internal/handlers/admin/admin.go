package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/dto"
	"github.com/wearshop/investmart/internal/handlers/investments"
	"github.com/wearshop/investmart/internal/handlers/newsletter"
	"github.com/wearshop/investmart/internal/handlers/projects"
	"github.com/wearshop/investmart/internal/handlers/withdrawals"
	"github.com/wearshop/investmart/internal/service/investmentservice"
	"github.com/wearshop/investmart/internal/service/ledgerservice"
	"github.com/wearshop/investmart/internal/service/newsletterservice"
	"github.com/wearshop/investmart/internal/service/profileservice"
	"github.com/wearshop/investmart/internal/service/projectservice"
	"github.com/wearshop/investmart/internal/service/withdrawalservice"
	"github.com/wearshop/investmart/pkg/utils"
)

type ProfileService interface {
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update profileservice.IdentityUpdate) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	Emails(ctx context.Context, ids []uuid.UUID) ([]string, error)
}

type ProjectService interface {
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetActive(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type InvestmentService interface {
	GetAllInvestments(ctx context.Context) ([]domain.Investment, error)
	CreateAdminInvestment(ctx context.Context, userID, projectID uuid.UUID, amount float64, paymentMethod string) (*domain.Investment, error)
	CancelInvestment(ctx context.Context, id uuid.UUID) (*domain.Investment, error)
}

type WithdrawalService interface {
	GetAllWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
}

type LedgerService interface {
	Apply(ctx context.Context, delta ledgerservice.Delta) (*domain.Profile, error)
}

type NewsletterService interface {
	GetAll(ctx context.Context) ([]domain.NewsletterArticle, error)
	Create(ctx context.Context, title, content string) (*domain.NewsletterArticle, error)
	Update(ctx context.Context, id uuid.UUID, title, content string) (*domain.NewsletterArticle, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Mailer interface {
	SendBulk(ctx context.Context, recipients []string, subject, html string) (sent int, failed int, err error)
}

type AdminHandler struct {
	profileService    ProfileService
	projectService    ProjectService
	investmentService InvestmentService
	withdrawalService WithdrawalService
	ledgerService     LedgerService
	newsletterService NewsletterService
	mailer            Mailer
}

func New(
	profileService ProfileService,
	projectService ProjectService,
	investmentService InvestmentService,
	withdrawalService WithdrawalService,
	ledgerService LedgerService,
	newsletterService NewsletterService,
	mailer Mailer,
) *AdminHandler {
	return &AdminHandler{
		profileService:    profileService,
		projectService:    projectService,
		investmentService: investmentService,
		withdrawalService: withdrawalService,
		ledgerService:     ledgerService,
		newsletterService: newsletterService,
		mailer:            mailer,
	}
}

func toUserDTO(p *domain.Profile) dto.AdminUserResponseDTO {
	return dto.AdminUserResponseDTO{
		ID:               p.ID.String(),
		Email:            p.Email,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Address:          p.Address,
		Phone:            p.Phone,
		IsAdmin:          p.IsAdmin,
		AvailableBalance: p.AvailableBalance,
		InvestedAmount:   p.InvestedAmount,
		CreatedAt:        p.CreatedAt,
	}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// GetUsers godoc
//
//	@Summary	List all users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AdminUserResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Admin access required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users [get]
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.ListProfiles(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	response := make([]dto.AdminUserResponseDTO, len(profiles))
	for i := range profiles {
		response[i] = toUserDTO(&profiles[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateUser godoc
//
//	@Summary	Update a user's identity fields
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"User ID"
//	@Param		request	body		dto.UpdateUserRequestDTO	true	"User fields"
//	@Success	200		{object}	dto.AdminUserResponseDTO
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(r.Context(), id, profileservice.IdentityUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Phone:     req.Phone,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		if errors.Is(err, profileservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(profile))
}

// DeleteUser godoc
//
//	@Summary	Delete a user
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"User ID"
//	@Success	204
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := h.profileService.DeleteProfile(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// AdjustBalance godoc
//
//	@Summary		Adjust a user's available balance
//	@Description	Credits (positive amount) or debits (negative amount) the available balance. Debits below zero are rejected.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdjustmentRequestDTO	true	"Adjustment payload"
//	@Success		200		{object}	dto.AdminUserResponseDTO	"Updated profile"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/adjustments [post]
func (h *AdminHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	profile, err := h.ledgerService.Apply(r.Context(), ledgerservice.ForAdjustment(userID, req.Amount))
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(profile))
}

// CreateProject godoc
//
//	@Summary	Create a project
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ProjectRequestDTO	true	"Project payload"
//	@Success	201		{object}	dto.ProjectResponseDTO
//	@Failure	422		{object}	utils.Response	"Invalid project payload"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/projects [post]
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.TargetAmount <= 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Name and a positive target amount are required")
		return
	}

	project := projectFromRequest(&req)
	created, err := h.projectService.CreateProject(r.Context(), project)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, projects.ToResponseDTO(created))
}

// UpdateProject godoc
//
//	@Summary	Update a project
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Project ID"
//	@Param		request	body		dto.ProjectRequestDTO	true	"Project payload"
//	@Success	200		{object}	dto.ProjectResponseDTO
//	@Failure	404		{object}	utils.Response	"Project not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/projects/{id} [put]
func (h *AdminHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	var req dto.ProjectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, projectservice.ErrProjectNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	project := projectFromRequest(&req)
	project.ID = id
	project.CollectedAmount = existing.CollectedAmount
	if req.Status == "" {
		project.Status = existing.Status
	}
	if req.IsActive == nil {
		project.IsActive = existing.IsActive
	}

	updated, err := h.projectService.UpdateProject(r.Context(), project)
	if err != nil {
		if errors.Is(err, projectservice.ErrProjectNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, projects.ToResponseDTO(updated))
}

// DeleteProject godoc
//
//	@Summary	Delete a project
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Project ID"
//	@Success	204
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/projects/{id} [delete]
func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid project id")
		return
	}
	if err := h.projectService.DeleteProject(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func projectFromRequest(req *dto.ProjectRequestDTO) *domain.Project {
	project := &domain.Project{
		Name:                req.Name,
		ShortDescription:    req.ShortDescription,
		DetailedDescription: req.DetailedDescription,
		Location:            req.Location,
		Category:            req.Category,
		ImageURL:            req.ImageURL,
		TargetAmount:        req.TargetAmount,
		MinAmount:           req.MinAmount,
		ReturnRate:          req.ReturnRate,
		Status:              req.Status,
		ImplementationDate:  req.ImplementationDate,
		EndDate:             req.EndDate,
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	return project
}

// GetInvestments godoc
//
//	@Summary	List all investments
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.InvestmentResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/investments [get]
func (h *AdminHandler) GetInvestments(w http.ResponseWriter, r *http.Request) {
	list, err := h.investmentService.GetAllInvestments(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch investments")
		return
	}

	response := make([]dto.InvestmentResponseDTO, len(list))
	for i := range list {
		response[i] = investments.ToResponseDTO(&list[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateInvestment godoc
//
//	@Summary		Record a manual investment
//	@Description	Records a cash or manual investment made outside the platform. No balance is debited; the invested amount is credited.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminInvestmentRequestDTO	true	"Investment payload"
//	@Success		201		{object}	dto.InvestmentResponseDTO
//	@Failure		404		{object}	utils.Response	"Project not found"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/investments [post]
func (h *AdminHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminInvestmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	investment, err := h.investmentService.CreateAdminInvestment(r.Context(), userID, projectID, req.Amount, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, investmentservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, projectservice.ErrProjectNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Project not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, investments.ToResponseDTO(investment))
}

// CancelInvestment godoc
//
//	@Summary		Cancel an investment
//	@Description	Reverses the exact ledger effects recorded at creation time.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Investment ID"
//	@Success		200	{object}	dto.InvestmentResponseDTO
//	@Failure		404	{object}	utils.Response	"Investment not found"
//	@Failure		409	{object}	utils.Response	"Investment already cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/investments/{id}/cancel [post]
func (h *AdminHandler) CancelInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid investment id")
		return
	}

	investment, err := h.investmentService.CancelInvestment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, investmentservice.ErrInvestmentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Investment not found")
		case errors.Is(err, investmentservice.ErrAlreadyCancelled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, investments.ToResponseDTO(investment))
}

// GetWithdrawals godoc
//
//	@Summary	List all withdrawals
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.WithdrawalResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/withdrawals [get]
func (h *AdminHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	list, err := h.withdrawalService.GetAllWithdrawals(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(list))
	for i := range list {
		response[i] = withdrawals.ToResponseDTO(&list[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CancelWithdrawal godoc
//
//	@Summary		Cancel a withdrawal
//	@Description	Returns the reserved gross amount to the user's available balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Withdrawal ID"
//	@Success		200	{object}	dto.WithdrawalResponseDTO
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal already cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/cancel [post]
func (h *AdminHandler) CancelWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	withdrawal, err := h.withdrawalService.Cancel(r.Context(), id)
	if err != nil {
		respondWithdrawalError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, withdrawals.ToResponseDTO(withdrawal))
}

// CompleteWithdrawal godoc
//
//	@Summary		Mark a withdrawal as paid out
//	@Description	No ledger movement: the funds were already reserved when the withdrawal was requested.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Withdrawal ID"
//	@Success		200	{object}	dto.WithdrawalResponseDTO
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/complete [post]
func (h *AdminHandler) CompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	withdrawal, err := h.withdrawalService.Complete(r.Context(), id)
	if err != nil {
		respondWithdrawalError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, withdrawals.ToResponseDTO(withdrawal))
}

func respondWithdrawalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, withdrawalservice.ErrWithdrawalNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Withdrawal not found")
	case errors.Is(err, withdrawalservice.ErrAlreadyCancelled),
		errors.Is(err, withdrawalservice.ErrNotPending):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// SendEmail godoc
//
//	@Summary		Send a bulk email campaign
//	@Description	Sends to the selected users, or to every user when recipient_ids is empty. Individual delivery failures do not abort the campaign.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EmailRequestDTO	true	"Campaign payload"
//	@Success		200		{object}	dto.EmailSummaryResponseDTO
//	@Failure		422		{object}	utils.Response	"Missing subject or content"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/emails [post]
func (h *AdminHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req dto.EmailRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Subject == "" || req.Content == "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Subject and content are required")
		return
	}

	var ids []uuid.UUID
	if !req.All {
		for _, raw := range req.RecipientIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipient id")
				return
			}
			ids = append(ids, id)
		}
	}

	recipients, err := h.profileService.Emails(r.Context(), ids)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to resolve recipients")
		return
	}

	sent, failed, err := h.mailer.SendBulk(r.Context(), recipients, req.Subject, req.Content)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send emails")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EmailSummaryResponseDTO{Sent: sent, Failed: failed})
}

// GetArticles godoc
//
//	@Summary	List all newsletter articles, drafts included
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.ArticleResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/newsletter [get]
func (h *AdminHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.newsletterService.GetAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}

	response := make([]dto.ArticleResponseDTO, len(articles))
	for i := range articles {
		response[i] = newsletter.ToResponseDTO(&articles[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateArticle godoc
//
//	@Summary	Create a newsletter article
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ArticleRequestDTO	true	"Article payload"
//	@Success	201		{object}	dto.ArticleResponseDTO
//	@Failure	422		{object}	utils.Response	"Missing title"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/newsletter [post]
func (h *AdminHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req dto.ArticleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Title is required")
		return
	}

	article, err := h.newsletterService.Create(r.Context(), req.Title, req.Content)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, newsletter.ToResponseDTO(article))
}

// UpdateArticle godoc
//
//	@Summary	Update a newsletter article
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Article ID"
//	@Param		request	body		dto.ArticleRequestDTO	true	"Article payload"
//	@Success	200		{object}	dto.ArticleResponseDTO
//	@Failure	404		{object}	utils.Response	"Article not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/newsletter/{id} [put]
func (h *AdminHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid article id")
		return
	}

	var req dto.ArticleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.newsletterService.Update(r.Context(), id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, newsletterservice.ErrArticleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Article not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newsletter.ToResponseDTO(article))
}

// PublishArticle godoc
//
//	@Summary	Publish or unpublish an article
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	string				true	"Article ID"
//	@Param		request	body	map[string]bool	true	"{\"published\": true}"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Article not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/newsletter/{id}/publish [post]
func (h *AdminHandler) PublishArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid article id")
		return
	}

	var req struct {
		Published bool `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.newsletterService.SetPublished(r.Context(), id, req.Published); err != nil {
		if errors.Is(err, newsletterservice.ErrArticleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Article not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// DeleteArticle godoc
//
//	@Summary	Delete a newsletter article
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Article ID"
//	@Success	204
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/newsletter/{id} [delete]
func (h *AdminHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid article id")
		return
	}
	if err := h.newsletterService.Delete(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
