package hostel

import "strings"

// ValidateNewTenant checks the fields the add-tenant form requires.
func ValidateNewTenant(t Tenant) error {
	required := []struct {
		field string
		value string
	}{
		{"name", t.Name},
		{"email", t.Email},
		{"phone", t.Phone},
		{"roomNumber", t.RoomNumber},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: "is required"}
		}
	}
	if !t.Status.Valid() {
		return &ValidationError{Field: "status", Message: "must be Active, Pending or Inactive"}
	}
	if t.Rent < 0 {
		return &ValidationError{Field: "rent", Message: "cannot be negative"}
	}
	if t.Deposit < 0 {
		return &ValidationError{Field: "deposit", Message: "cannot be negative"}
	}
	return nil
}

// ValidateNewRoom checks a room before insertion.
func ValidateNewRoom(r Room) error {
	if strings.TrimSpace(r.RoomNumber) == "" {
		return &ValidationError{Field: "roomNumber", Message: "is required"}
	}
	if r.Capacity <= 0 {
		return &ValidationError{Field: "capacity", Message: "must be positive"}
	}
	return nil
}

// ValidateNewBed checks a bed before insertion.
func ValidateNewBed(b Bed) error {
	if strings.TrimSpace(b.BedNumber) == "" {
		return &ValidationError{Field: "bedNumber", Message: "is required"}
	}
	if b.MonthlyRent <= 0 {
		return &ValidationError{Field: "monthlyRent", Message: "must be positive"}
	}
	return nil
}

// ValidateNewPayment checks a payment before insertion.
func ValidateNewPayment(p Payment) error {
	if p.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be positive"}
	}
	if p.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "is required"}
	}
	if strings.TrimSpace(p.Method) == "" {
		return &ValidationError{Field: "method", Message: "is required"}
	}
	return nil
}
