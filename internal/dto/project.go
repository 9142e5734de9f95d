package dto

type Currency string

const (
	CurrencyCUSD Currency = "cUSD"
	CurrencyCEUR Currency = "cEUR"
)

type ProjectRequestDTO struct {
	Name        string `json:"name" example:"Reforestation Project"`
	Description string `json:"description" example:"Planting trees in Amazon"`
	Impact      string `json:"impact" example:"Reduces CO2 by 100kg per tree"`
}

type OffsetRequestDTO struct {
	ProjectID string   `json:"projectId" example:"1"`
	Amount    float64  `json:"amount" example:"5000"`
	Currency  Currency `json:"currency,omitempty" example:"cUSD"`
	CO2Offset *float64 `json:"co2Offset,omitempty" example:"12.5"`
}

type OffsetResponseDTO struct {
	OffsetID string `json:"offsetId"`
}

// ListResponseDTO is the wrapped list shape some endpoints use.
type ListResponseDTO[T any] struct {
	Data []T `json:"data"`
}
