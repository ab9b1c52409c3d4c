package person

import "github.com/shopspring/decimal"

// CreatePersonRequest is the body of POST /api/Pessoa. A missing
// saldoInicial opens the account at zero.
type CreatePersonRequest struct {
	Name           string          `json:"nome" validate:"required"`
	InitialBalance decimal.Decimal `json:"saldoInicial" swaggertype:"number"`
}

// UpdatePersonRequest is the body of PATCH /api/Pessoa/:id. Omitting nome
// leaves the person unchanged.
type UpdatePersonRequest struct {
	Name *string `json:"nome"`
}

// CreatedResponse carries the id of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}
