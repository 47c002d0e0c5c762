package balance

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wearshop/investmart/internal/domain"
	"github.com/wearshop/investmart/internal/dto"
	"github.com/wearshop/investmart/internal/service/ledgerservice"
	"github.com/wearshop/investmart/pkg/auth"
	"github.com/wearshop/investmart/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user ledger
//	@Description	Retrieve the available balance and the cumulative invested amount for the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Available and invested amounts"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	profile, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Available: profile.AvailableBalance,
		Invested:  profile.InvestedAmount,
	})
}
