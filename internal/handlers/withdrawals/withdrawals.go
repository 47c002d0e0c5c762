package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/dto"
	"github.com/wearshop/investmart/internal/service/ledgerservice"
	"github.com/wearshop/investmart/internal/service/withdrawalservice"
	"github.com/wearshop/investmart/pkg/auth"
	"github.com/wearshop/investmart/pkg/utils"
)

type Service interface {
	Request(ctx context.Context, userID uuid.UUID, amount float64, method, iban, phone string) (*domain.Withdrawal, error)
	GetUserWithdrawals(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

func ToResponseDTO(wd *domain.Withdrawal) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:               wd.ID.String(),
		UserID:           wd.UserID.String(),
		Amount:           wd.Amount,
		Fees:             wd.Fees,
		NetAmount:        wd.NetAmount(),
		WithdrawalMethod: wd.WithdrawalMethod,
		Status:           wd.Status,
		IsCancelled:      wd.IsCancelled,
		CreatedAt:        wd.CreatedAt,
	}
}

// Request godoc
//
//	@Summary		Request a withdrawal
//	@Description	Reserve funds for payout. The gross amount is deducted from the available balance immediately.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO	"Pending withdrawal"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		422		{object}	utils.Response				"Invalid amount or missing bank details"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) Request(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.Request(r.Context(), userID, req.Amount, req.WithdrawalMethod, req.IBAN, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidAmount),
			errors.Is(err, withdrawalservice.ErrInvalidMethod),
			errors.Is(err, withdrawalservice.ErrBelowMinimumForMethod),
			errors.Is(err, withdrawalservice.ErrMissingBankDetails):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ToResponseDTO(withdrawal))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response				"Withdrawals not found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	withdrawals, err := h.withdrawalService.GetUserWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = ToResponseDTO(&withdrawals[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
