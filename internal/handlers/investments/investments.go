package investments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/dto"
	"github.com/wearshop/investmart/internal/service/investmentservice"
	"github.com/wearshop/investmart/internal/service/ledgerservice"
	"github.com/wearshop/investmart/internal/service/projectservice"
	"github.com/wearshop/investmart/pkg/auth"
	"github.com/wearshop/investmart/pkg/utils"
)

type Service interface {
	CreateBalanceInvestment(ctx context.Context, userID, projectID uuid.UUID, amount float64, hasInsurance bool) (*domain.Investment, error)
	InitiateCardInvestment(ctx context.Context, userID, projectID uuid.UUID, amount float64, hasInsurance bool) (*domain.Investment, string, error)
	CreatePayPalInvestment(ctx context.Context, userID, projectID uuid.UUID, amount float64, hasInsurance bool, orderID string) (*domain.Investment, error)
	GetUserInvestments(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error)
}

type InvestmentHandler struct {
	investmentService Service
}

func New(investmentService Service) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

func ToResponseDTO(inv *domain.Investment) dto.InvestmentResponseDTO {
	return dto.InvestmentResponseDTO{
		ID:            inv.ID.String(),
		UserID:        inv.UserID.String(),
		ProjectID:     inv.ProjectID.String(),
		Amount:        inv.Amount,
		InsuranceFee:  inv.InsuranceFee,
		PaymentMethod: inv.PaymentMethod,
		Status:        inv.Status,
		IsCancelled:   inv.IsCancelled,
		CreatedAt:     inv.CreatedAt,
	}
}

// Create godoc
//
//	@Summary		Create an investment
//	@Description	Commit funds to a collecting project. Balance and PayPal investments complete immediately; card investments return a checkout URL.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateInvestmentRequestDTO	true	"Investment request payload"
//	@Success		200		{object}	dto.InvestmentResponseDTO		"Completed investment"
//	@Success		201		{object}	dto.CheckoutResponseDTO			"Card checkout initiated"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient funds"
//	@Failure		422		{object}	utils.Response					"Amount outside the allowed range"
//	@Failure		502		{object}	utils.Response					"Payment provider error"
//	@Router			/api/user/investments [post]
func (h *InvestmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.CreateInvestmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	switch req.PaymentMethod {
	case domain.PaymentMethodBalance:
		investment, err := h.investmentService.CreateBalanceInvestment(r.Context(), userID, projectID, req.Amount, req.HasInsurance)
		if err != nil {
			respondInvestmentError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, ToResponseDTO(investment))

	case domain.PaymentMethodCard:
		investment, url, err := h.investmentService.InitiateCardInvestment(r.Context(), userID, projectID, req.Amount, req.HasInsurance)
		if err != nil {
			respondInvestmentError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusCreated, dto.CheckoutResponseDTO{
			InvestmentID: investment.ID.String(),
			URL:          url,
		})

	case domain.PaymentMethodPayPal:
		investment, err := h.investmentService.CreatePayPalInvestment(r.Context(), userID, projectID, req.Amount, req.HasInsurance, req.ProviderOrderID)
		if err != nil {
			respondInvestmentError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, ToResponseDTO(investment))

	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown payment method")
	}
}

func respondInvestmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, investmentservice.ErrInvalidAmount),
		errors.Is(err, investmentservice.ErrProjectNotInvestable):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, projectservice.ErrProjectNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledgerservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, investmentservice.ErrPaymentProvider):
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetInvestments godoc
//
//	@Summary		Get investments history
//	@Tags			Investments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InvestmentResponseDTO	"Investments history"
//	@Success		204	{object}	utils.Response				"No investments"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/investments [get]
func (h *InvestmentHandler) GetInvestments(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	investments, err := h.investmentService.GetUserInvestments(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch investments")
		return
	}
	if len(investments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No investments")
		return
	}

	response := make([]dto.InvestmentResponseDTO, len(investments))
	for i := range investments {
		response[i] = ToResponseDTO(&investments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
