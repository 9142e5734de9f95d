package dto

import "github.com/ecopay/ecopay/internal/domain"

type RegisterRequestDTO struct {
	FullName string `json:"fullName" example:"Ada Obi"`
	Email    string `json:"email" example:"ada@ecopay.app"`
	Password string `json:"password" example:"s3cret-pass"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"ada@ecopay.app"`
	Password string `json:"password" example:"s3cret-pass"`
}

// AuthResponseDTO is returned by both signup and signin.
type AuthResponseDTO struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

type WalletRequestDTO struct {
	Address string `json:"address" example:"0x742d35Cc6634C0532925a3b844Bc454e4438f44e"`
}

type WalletResponseDTO struct {
	Connected bool `json:"connected"`
}
