/*
Package hostel provides the record types and rules for a paying-guest hostel.

PURPOSE:
  A PG hostel rents beds, not rooms. This package defines the four persisted
  records (Tenant, Room, Bed, Payment), the partial-update patches applied to
  them, and the pure functions the API builds on (validation, filtering,
  dashboard aggregation). Persistence lives in store/sqlite.

KEY CONCEPTS IN THIS FILE (types.go):
  - Tenant: a person renting a bed, with room/bed named as display strings
  - Room:   a numbered room with a bed capacity
  - Bed:    the rentable unit, linked to one room and at most one tenant
  - Payment: a rent payment recorded against a tenant

DENORMALIZED ASSIGNMENT:
  A tenant's room and bed are stored twice: as RoomNumber/BedNumber strings
  on the tenant, and as Bed.TenantID on the bed row. Nothing keeps the two in
  step after creation. EnsureRoomAndBedForTenant (store/sqlite) repairs the
  missing-row case only.

SEE ALSO:
  - patch.go: Partial updates
  - errors.go: Sentinel errors
  - store.go: Persistence interface
*/
package hostel

import (
	"time"
)

// =============================================================================
// TENANT
// =============================================================================

// TenantStatus is the lifecycle flag set directly by the operator.
type TenantStatus string

const (
	StatusActive   TenantStatus = "Active"
	StatusPending  TenantStatus = "Pending"
	StatusInactive TenantStatus = "Inactive"
)

// Valid reports whether s is one of the known statuses.
func (s TenantStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusInactive:
		return true
	}
	return false
}

// ParseStatus converts a user supplied string into a TenantStatus.
func ParseStatus(s string) (TenantStatus, error) {
	status := TenantStatus(s)
	if !status.Valid() {
		return "", &ValidationError{Field: "status", Message: "must be Active, Pending or Inactive"}
	}
	return status, nil
}

// Tenant is a person renting a bed.
// Optional text fields use "" for absent; optional dates use nil.
type Tenant struct {
	ID               string
	Name             string
	Email            string
	Phone            string
	RoomNumber       string
	BedNumber        string
	JoinDate         Date
	Rent             int64
	Deposit          int64
	Status           TenantStatus
	LastPayment      *Date
	NextPaymentDue   *Date
	Address          string
	EmergencyContact string
	Photo            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsOverdue reports whether the next payment due date is before today.
func (t Tenant) IsOverdue(today Date) bool {
	return t.NextPaymentDue != nil && t.NextPaymentDue.Before(today)
}

// =============================================================================
// ROOM AND BED
// =============================================================================

// Room is a numbered room. RoomNumber is unique.
type Room struct {
	ID         string
	RoomNumber string
	Capacity   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Bed belongs to exactly one room. (RoomID, BedNumber) is unique.
// TenantID is "" when the bed is not linked to a tenant.
type Bed struct {
	ID          string
	RoomID      string
	BedNumber   string
	IsOccupied  bool
	TenantID    string
	MonthlyRent int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// =============================================================================
// PAYMENT
// =============================================================================

// Payment is a rent payment. Deleting the tenant deletes its payments.
type Payment struct {
	ID        string
	TenantID  string
	Amount    int64
	Date      Date
	Method    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
