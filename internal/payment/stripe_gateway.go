package payment

import (
	"context"

	"storefront-be/internal/logger"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"go.uber.org/zap"
)

type stripeGateway struct {
	sc *client.API
}

// NewStripeGateway builds a Gateway backed by the Stripe charges API. The
// key is injected rather than read from the environment inside calls.
func NewStripeGateway(apiKey string) Gateway {
	if apiKey == "" {
		logger.L().Warn("Stripe API key is empty")
	}

	sc := &client.API{}
	sc.Init(apiKey, nil)

	return &stripeGateway{sc: sc}
}

func (g *stripeGateway) CreateCharge(ctx context.Context, amount int64, sourceToken, description string) (*Charge, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", amount),
		zap.String("description", description),
	)

	params := &stripe.ChargeParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(description),
	}
	if err := params.SetSource(sourceToken); err != nil {
		log.Error("invalid payment source", zap.Error(err))
		return nil, err
	}

	log.Info("sending charge request to Stripe")

	ch, err := g.sc.Charges.New(params)
	if err != nil {
		log.Error("Stripe charge failed", zap.Error(err))
		return nil, err
	}

	log.Info("Stripe charge created",
		zap.String("charge_id", ch.ID),
		zap.Int64("charged_amount", ch.Amount),
	)

	return &Charge{ID: ch.ID, Amount: ch.Amount}, nil
}
