package dto

import "time"

type ProjectResponseDTO struct {
	ID                  string     `json:"id" example:"7f3e8c1a-1d2b-4c59-9f0e-6a8b51c0d1e2"`
	Name                string     `json:"name" example:"Atelier Lyon"`
	ShortDescription    string     `json:"short_description,omitempty"`
	DetailedDescription string     `json:"detailed_description,omitempty"`
	Location            string     `json:"location,omitempty" example:"Lyon"`
	Category            string     `json:"category,omitempty" example:"textile"`
	ImageURL            string     `json:"image_url,omitempty"`
	TargetAmount        float64    `json:"target_amount" example:"5000"`
	CollectedAmount     float64    `json:"collected_amount" example:"1250"`
	MinAmount           float64    `json:"min_amount" example:"50"`
	ReturnRate          float64    `json:"return_rate" example:"8"`
	Status              string     `json:"status" example:"collecting"`
	Progress            float64    `json:"progress" example:"25"`
	RemainingAmount     float64    `json:"remaining_amount" example:"3750"`
	ImplementationDate  *time.Time `json:"implementation_date,omitempty"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

type ProjectRequestDTO struct {
	Name                string     `json:"name" validate:"required"`
	ShortDescription    string     `json:"short_description"`
	DetailedDescription string     `json:"detailed_description"`
	Location            string     `json:"location"`
	Category            string     `json:"category"`
	ImageURL            string     `json:"image_url"`
	TargetAmount        float64    `json:"target_amount" validate:"required,gt=0"`
	MinAmount           float64    `json:"min_amount"`
	ReturnRate          float64    `json:"return_rate"`
	Status              string     `json:"status"`
	IsActive            *bool      `json:"is_active"`
	ImplementationDate  *time.Time `json:"implementation_date"`
	EndDate             *time.Time `json:"end_date"`
}
