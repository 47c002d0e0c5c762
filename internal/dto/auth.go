package dto

type RegisterRequestDTO struct {
	Email     string `json:"email" validate:"required,email" example:"investor@example.com"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" example:"Marie"`
	LastName  string `json:"last_name" example:"Durand"`
	Address   string `json:"address" example:"12 rue de la Paix, 75002 Paris"`
	Phone     string `json:"phone" example:"+33612345678"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"investor@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
