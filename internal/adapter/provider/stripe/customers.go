// Package stripe resolves Stripe customer ids to email addresses. Webhook
// events for subscriptions carry a customer id but no email, so the lookup
// goes through the Stripe API.
package stripe

import (
	"context"
	"fmt"
	"log/slog"

	stripesdk "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// CustomerResolver looks up customers through the Stripe API.
type CustomerResolver struct {
	api *client.API
	log *slog.Logger
}

// NewCustomerResolver creates a resolver using the given secret API key.
func NewCustomerResolver(apiKey string, logger *slog.Logger) *CustomerResolver {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &CustomerResolver{
		api: api,
		log: logger.With("adapter", "stripe"),
	}
}

// EmailByCustomerID returns the email of the Stripe customer with the
// given id.
func (r *CustomerResolver) EmailByCustomerID(ctx context.Context, customerID string) (string, error) {
	params := &stripesdk.CustomerParams{
		Params: stripesdk.Params{Context: ctx},
	}

	cust, err := r.api.Customers.Get(customerID, params)
	if err != nil {
		r.log.ErrorContext(ctx, "stripe customer lookup failed",
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: stripe: %s", domain.ErrUpstream, err)
	}
	if cust.Email == "" {
		return "", fmt.Errorf("%w: stripe: customer %s has no email", domain.ErrUpstream, customerID)
	}

	return cust.Email, nil
}
