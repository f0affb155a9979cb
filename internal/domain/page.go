package domain

// MaxPageSize caps the limit accepted by list operations.
const MaxPageSize = 1000

// ValidatePage checks list pagination parameters.
func ValidatePage(skip, limit int) error {
	if skip < 0 {
		return NewValidationError("skip", "must not be negative")
	}
	if limit < 1 || limit > MaxPageSize {
		return NewValidationError("limit", "must be between 1 and 1000")
	}
	return nil
}
