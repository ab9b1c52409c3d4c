package account

import "github.com/shopspring/decimal"

// AmountRequest is the body of the credit and debit endpoints. valor accepts
// a JSON number or a numeric string with at most two decimal places.
type AmountRequest struct {
	Amount *decimal.Decimal `json:"valor" validate:"required" swaggertype:"number"`
}

// BalanceResponse carries the balance after a credit or debit.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"saldo" swaggertype:"number"`
}
