package payment

import "context"

// Charge is the outcome of a captured payment.
type Charge struct {
	ID     string
	Amount int64
}

// Gateway captures payments. Amounts are integer minor currency units.
type Gateway interface {
	CreateCharge(ctx context.Context, amount int64, sourceToken, description string) (*Charge, error)
}
