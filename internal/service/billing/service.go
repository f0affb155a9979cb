// Package billing turns Stripe webhook events into payment status changes.
// Events are accepted only with a valid signature; past that point every
// failure is a logged no-op so Stripe does not retry endlessly.
package billing

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	stripesdk "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

// ErrInvalidSignature is returned when the webhook signature check fails
// or the payload cannot be parsed as a Stripe event.
var ErrInvalidSignature = errors.New("invalid stripe signature")

// userRepo defines the user repository interface needed by billing.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, params domain.UserUpdate) (*domain.User, error)
}

// customerResolver resolves a Stripe customer id to an email address.
type customerResolver interface {
	EmailByCustomerID(ctx context.Context, customerID string) (string, error)
}

// Service processes Stripe webhook events.
type Service struct {
	log           *slog.Logger
	users         userRepo
	customers     customerResolver
	webhookSecret string
}

// NewService creates a new billing service instance.
func NewService(logger *slog.Logger, users userRepo, customers customerResolver, webhookSecret string) *Service {
	return &Service{
		log:           logger.With("service", "billing"),
		users:         users,
		customers:     customers,
		webhookSecret: webhookSecret,
	}
}

// HandleEvent verifies and dispatches one webhook delivery. A nil return
// means the delivery was accepted; unhandled event types and unknown users
// are accepted silently.
func (s *Service) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
	if err != nil {
		s.log.WarnContext(ctx, "stripe webhook rejected", slog.String("error", err.Error()))
		return ErrInvalidSignature
	}

	switch event.Type {
	case "checkout.session.completed":
		s.handleCheckoutCompleted(ctx, event.Data.Raw)
	case "customer.subscription.updated":
		s.handleSubscriptionUpdated(ctx, event.Data.Raw)
	case "customer.subscription.deleted":
		s.handleSubscriptionDeleted(ctx, event.Data.Raw)
	default:
		s.log.DebugContext(ctx, "ignoring stripe event", slog.String("type", string(event.Type)))
	}

	return nil
}

// handleCheckoutCompleted marks the buyer paid. The checkout session
// carries the customer email directly.
func (s *Service) handleCheckoutCompleted(ctx context.Context, raw json.RawMessage) {
	var session stripesdk.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		s.log.ErrorContext(ctx, "malformed checkout session", slog.String("error", err.Error()))
		return
	}

	if session.CustomerDetails == nil || session.CustomerDetails.Email == "" {
		s.log.WarnContext(ctx, "checkout session without customer email", slog.String("session_id", session.ID))
		return
	}

	s.setPaymentStatus(ctx, session.CustomerDetails.Email, domain.PaymentStatusPaid)
}

// handleSubscriptionUpdated follows the subscription status: active and
// trialing mean paid, anything else unpaid.
func (s *Service) handleSubscriptionUpdated(ctx context.Context, raw json.RawMessage) {
	sub, email, ok := s.resolveSubscription(ctx, raw)
	if !ok {
		return
	}

	status := domain.PaymentStatusUnpaid
	if sub.Status == stripesdk.SubscriptionStatusActive || sub.Status == stripesdk.SubscriptionStatusTrialing {
		status = domain.PaymentStatusPaid
	}

	s.setPaymentStatus(ctx, email, status)
}

func (s *Service) handleSubscriptionDeleted(ctx context.Context, raw json.RawMessage) {
	_, email, ok := s.resolveSubscription(ctx, raw)
	if !ok {
		return
	}

	s.setPaymentStatus(ctx, email, domain.PaymentStatusUnpaid)
}

// resolveSubscription parses a subscription payload and resolves the
// customer's email through the Stripe API.
func (s *Service) resolveSubscription(ctx context.Context, raw json.RawMessage) (*stripesdk.Subscription, string, bool) {
	var sub stripesdk.Subscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		s.log.ErrorContext(ctx, "malformed subscription", slog.String("error", err.Error()))
		return nil, "", false
	}

	if sub.Customer == nil || sub.Customer.ID == "" {
		s.log.WarnContext(ctx, "subscription without customer", slog.String("subscription_id", sub.ID))
		return nil, "", false
	}

	email, err := s.customers.EmailByCustomerID(ctx, sub.Customer.ID)
	if err != nil {
		s.log.ErrorContext(ctx, "customer lookup failed",
			slog.String("customer_id", sub.Customer.ID),
			slog.String("error", err.Error()))
		return nil, "", false
	}

	return &sub, email, true
}

func (s *Service) setPaymentStatus(ctx context.Context, email string, status domain.PaymentStatus) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "stripe event for unknown user", slog.String("email", email))
		} else {
			s.log.ErrorContext(ctx, "user lookup failed", slog.String("error", err.Error()))
		}
		return
	}

	if _, err := s.users.Update(ctx, user.ID, domain.UserUpdate{PaymentStatus: &status}); err != nil {
		s.log.ErrorContext(ctx, "payment status update failed",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()))
		return
	}

	s.log.InfoContext(ctx, "payment status updated",
		slog.Int64("user_id", user.ID),
		slog.String("status", status.String()))
}
