package dto

type TransactionRequestDTO struct {
	RecipientID     string   `json:"recipientId" example:"john.doe"`
	Amount          float64  `json:"amount" example:"15000"`
	Description     string   `json:"description,omitempty" example:"Dinner"`
	CarbonFootprint *float64 `json:"carbonFootprint,omitempty" example:"12"`
	Category        string   `json:"category,omitempty" example:"food"`
}

type BalanceRequestDTO struct {
	Amount float64 `json:"amount" example:"10000"`
}

type BalanceResponseDTO struct {
	Balance float64 `json:"balance" example:"1500"`
}
