/*
store.go - Persistence interface for tenants, rooms, beds and payments

PURPOSE:
  Defines the contract between the API layer and the record store. Each
  accessor maps to one SQL statement; none of them spans a transaction.

CONTRACT:
  List*   ordered: tenants by CreatedAt desc, rooms by RoomNumber asc,
          beds by BedNumber asc within a room, payments by Date desc
  Get*    (nil, nil) when the row does not exist
  Create* inserts the record as given; the caller supplies ID and timestamps
  Update* merges the patch over the stored row and stamps UpdatedAt;
          a missing row is a silent no-op (nil error)
  Delete* removes by ID; a missing row is a no-op

REFERENTIAL RULES (enforced by the store):
  - deleting a room deletes its beds
  - deleting a tenant deletes its payments and clears Bed.TenantID

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go
*/
package hostel

import "context"

// TenantStore persists tenants.
type TenantStore interface {
	ListTenants(ctx context.Context) ([]Tenant, error)
	GetTenant(ctx context.Context, id string) (*Tenant, error)
	CreateTenant(ctx context.Context, t Tenant) error
	UpdateTenant(ctx context.Context, id string, patch TenantPatch) error
	DeleteTenant(ctx context.Context, id string) error
}

// RoomStore persists rooms and their beds.
type RoomStore interface {
	ListRooms(ctx context.Context) ([]Room, error)
	GetRoom(ctx context.Context, id string) (*Room, error)
	GetRoomByNumber(ctx context.Context, roomNumber string) (*Room, error)
	CreateRoom(ctx context.Context, r Room) error
	UpdateRoom(ctx context.Context, id string, patch RoomPatch) error
	DeleteRoom(ctx context.Context, id string) error

	ListBedsByRoom(ctx context.Context, roomID string) ([]Bed, error)
	GetBed(ctx context.Context, id string) (*Bed, error)
	GetBedInRoom(ctx context.Context, roomID, bedNumber string) (*Bed, error)
	CreateBed(ctx context.Context, b Bed) error
	UpdateBed(ctx context.Context, id string, patch BedPatch) error
	DeleteBed(ctx context.Context, id string) error
}

// PaymentStore persists payments.
type PaymentStore interface {
	ListPaymentsForTenant(ctx context.Context, tenantID string) ([]Payment, error)
	GetPayment(ctx context.Context, id string) (*Payment, error)
	CreatePayment(ctx context.Context, p Payment) error
	DeletePayment(ctx context.Context, id string) error
}

// Store is the full record store.
type Store interface {
	TenantStore
	RoomStore
	PaymentStore

	// EnsureRoomAndBedForTenant creates the room and bed a tenant names if
	// they are missing. Existing rows are left untouched.
	EnsureRoomAndBedForTenant(ctx context.Context, t Tenant) (Reconciliation, error)

	// ReconcileAll runs EnsureRoomAndBedForTenant for every tenant.
	ReconcileAll(ctx context.Context) ([]Reconciliation, error)

	// Ping checks the store is reachable.
	Ping(ctx context.Context) error
}

// Reconciliation reports what EnsureRoomAndBedForTenant did for one tenant.
type Reconciliation struct {
	TenantID    string
	RoomID      string
	BedID       string // "" when the tenant names no bed
	RoomCreated bool
	BedCreated  bool
}

// Changed reports whether any row was inserted.
func (r Reconciliation) Changed() bool {
	return r.RoomCreated || r.BedCreated
}
