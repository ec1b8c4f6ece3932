package hostel

import "time"

// =============================================================================
// PATCHES - Partial updates merged over the stored record
// =============================================================================
//
// A nil field leaves the stored value alone. Apply returns the merged record
// with UpdatedAt stamped; the store writes the whole merged record back.

// TenantPatch is a partial Tenant. ID and CreatedAt cannot be patched.
type TenantPatch struct {
	Name             *string
	Email            *string
	Phone            *string
	RoomNumber       *string
	BedNumber        *string
	JoinDate         *Date
	Rent             *int64
	Deposit          *int64
	Status           *TenantStatus
	LastPayment      *Date // zero Date clears
	NextPaymentDue   *Date // zero Date clears
	Address          *string
	EmergencyContact *string
	Photo            *string
}

// Apply merges p over t.
func (p TenantPatch) Apply(t Tenant, at time.Time) Tenant {
	setString(&t.Name, p.Name)
	setString(&t.Email, p.Email)
	setString(&t.Phone, p.Phone)
	setString(&t.RoomNumber, p.RoomNumber)
	setString(&t.BedNumber, p.BedNumber)
	if p.JoinDate != nil {
		t.JoinDate = *p.JoinDate
	}
	setInt(&t.Rent, p.Rent)
	setInt(&t.Deposit, p.Deposit)
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.LastPayment != nil {
		t.LastPayment = DatePtr(*p.LastPayment)
	}
	if p.NextPaymentDue != nil {
		t.NextPaymentDue = DatePtr(*p.NextPaymentDue)
	}
	setString(&t.Address, p.Address)
	setString(&t.EmergencyContact, p.EmergencyContact)
	setString(&t.Photo, p.Photo)
	t.UpdatedAt = at
	return t
}

// Validate checks the fields the patch sets.
func (p TenantPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if p.Status != nil && !p.Status.Valid() {
		return &ValidationError{Field: "status", Message: "must be Active, Pending or Inactive"}
	}
	if p.Rent != nil && *p.Rent < 0 {
		return &ValidationError{Field: "rent", Message: "cannot be negative"}
	}
	if p.Deposit != nil && *p.Deposit < 0 {
		return &ValidationError{Field: "deposit", Message: "cannot be negative"}
	}
	return nil
}

// RoomPatch is a partial Room.
type RoomPatch struct {
	RoomNumber *string
	Capacity   *int
}

// Apply merges p over r.
func (p RoomPatch) Apply(r Room, at time.Time) Room {
	setString(&r.RoomNumber, p.RoomNumber)
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	r.UpdatedAt = at
	return r
}

func (p RoomPatch) Validate() error {
	if p.RoomNumber != nil && *p.RoomNumber == "" {
		return &ValidationError{Field: "roomNumber", Message: "cannot be empty"}
	}
	if p.Capacity != nil && *p.Capacity <= 0 {
		return &ValidationError{Field: "capacity", Message: "must be positive"}
	}
	return nil
}

// BedPatch is a partial Bed. The room a bed belongs to cannot change.
// TenantID set to "" unlinks the tenant.
type BedPatch struct {
	BedNumber   *string
	IsOccupied  *bool
	TenantID    *string
	MonthlyRent *int64
}

// Apply merges p over b.
func (p BedPatch) Apply(b Bed, at time.Time) Bed {
	setString(&b.BedNumber, p.BedNumber)
	if p.IsOccupied != nil {
		b.IsOccupied = *p.IsOccupied
	}
	setString(&b.TenantID, p.TenantID)
	setInt(&b.MonthlyRent, p.MonthlyRent)
	b.UpdatedAt = at
	return b
}

func (p BedPatch) Validate() error {
	if p.BedNumber != nil && *p.BedNumber == "" {
		return &ValidationError{Field: "bedNumber", Message: "cannot be empty"}
	}
	if p.MonthlyRent != nil && *p.MonthlyRent <= 0 {
		return &ValidationError{Field: "monthlyRent", Message: "must be positive"}
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}
