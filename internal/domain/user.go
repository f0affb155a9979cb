package domain

import "time"

// PaymentStatus is a user's subscription state.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// IsValid reports whether s is a known payment status.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPaid || s == PaymentStatusUnpaid
}

func (s PaymentStatus) String() string { return string(s) }

// User represents an application user. A user may hold a local password
// hash, a Google identity, or both; either is enough to log in.
type User struct {
	ID             int64
	Email          string
	GoogleID       *string
	HashedPassword *string
	DisplayName    string
	PhotoURL       *string
	IsActive       bool
	PaymentStatus  PaymentStatus
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// IsPaid reports whether the user is on the paid tier.
func (u *User) IsPaid() bool {
	return u.PaymentStatus == PaymentStatusPaid
}
