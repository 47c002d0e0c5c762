package dto

type BalanceResponseDTO struct {
	Available float64 `json:"available" example:"120.5"`
	Invested  float64 `json:"invested" example:"850"`
}
