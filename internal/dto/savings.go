package dto

type SavingsRequestDTO struct {
	Name   string  `json:"name" example:"Emergency Fund"`
	Target float64 `json:"target" example:"500000"`
	Due    string  `json:"due" example:"2024-12-31"`
}

type AddSavingsRequestDTO struct {
	Amount float64 `json:"amount" example:"2500"`
}
