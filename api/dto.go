/*
dto.go - JSON shapes for the hostel API

PURPOSE:
  Decouples the record types in package hostel from the wire contract.
  Field names are camelCase to match the column names the mobile screens
  already use.

NAMING CONVENTION:
  - *DTO: response bodies
  - Create*Request: POST bodies, every field optional at the JSON level;
    required fields are checked by hostel.ValidateNew*
  - Update*Request: PATCH bodies, pointer fields; null or absent means
    "leave alone"

DATES:
  Calendar dates travel as "YYYY-MM-DD". In a PATCH body an empty string
  clears an optional date (lastPayment, nextPaymentDue).

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/hostelr/hostel"
)

// =============================================================================
// TENANTS
// =============================================================================

// TenantDTO represents a tenant in API responses.
type TenantDTO struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	RoomNumber       string       `json:"roomNumber"`
	BedNumber        string       `json:"bedNumber"`
	JoinDate         hostel.Date  `json:"joinDate"`
	Rent             int64        `json:"rent"`
	Deposit          int64        `json:"deposit"`
	Status           string       `json:"status"`
	LastPayment      *hostel.Date `json:"lastPayment"`
	NextPaymentDue   *hostel.Date `json:"nextPaymentDue"`
	Address          string       `json:"address,omitempty"`
	EmergencyContact string       `json:"emergencyContact,omitempty"`
	Photo            string       `json:"photo,omitempty"`
	Overdue          bool         `json:"overdue"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// CreateTenantRequest is the body of POST /api/tenants.
type CreateTenantRequest struct {
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	RoomNumber       string       `json:"roomNumber"`
	BedNumber        string       `json:"bedNumber"`
	JoinDate         *hostel.Date `json:"joinDate"`
	Rent             int64        `json:"rent"`
	Deposit          int64        `json:"deposit"`
	Status           string       `json:"status"`
	NextPaymentDue   *hostel.Date `json:"nextPaymentDue"`
	Address          string       `json:"address"`
	EmergencyContact string       `json:"emergencyContact"`
	Photo            string       `json:"photo"`
}

// UpdateTenantRequest is the body of PATCH /api/tenants/{id}.
type UpdateTenantRequest struct {
	Name             *string      `json:"name"`
	Email            *string      `json:"email"`
	Phone            *string      `json:"phone"`
	RoomNumber       *string      `json:"roomNumber"`
	BedNumber        *string      `json:"bedNumber"`
	JoinDate         *hostel.Date `json:"joinDate"`
	Rent             *int64       `json:"rent"`
	Deposit          *int64       `json:"deposit"`
	Status           *string      `json:"status"`
	LastPayment      *hostel.Date `json:"lastPayment"`
	NextPaymentDue   *hostel.Date `json:"nextPaymentDue"`
	Address          *string      `json:"address"`
	EmergencyContact *string      `json:"emergencyContact"`
	Photo            *string      `json:"photo"`
}

// Patch converts the request into a hostel.TenantPatch.
func (req UpdateTenantRequest) Patch() (hostel.TenantPatch, error) {
	p := hostel.TenantPatch{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		RoomNumber:       req.RoomNumber,
		BedNumber:        req.BedNumber,
		JoinDate:         req.JoinDate,
		Rent:             req.Rent,
		Deposit:          req.Deposit,
		LastPayment:      req.LastPayment,
		NextPaymentDue:   req.NextPaymentDue,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		Photo:            req.Photo,
	}
	if req.Status != nil {
		status, err := hostel.ParseStatus(*req.Status)
		if err != nil {
			return hostel.TenantPatch{}, err
		}
		p.Status = &status
	}
	return p, p.Validate()
}

// =============================================================================
// ROOMS AND BEDS
// =============================================================================

// RoomDTO represents a room with its beds.
type RoomDTO struct {
	ID           string    `json:"id"`
	RoomNumber   string    `json:"roomNumber"`
	Capacity     int       `json:"capacity"`
	OccupiedBeds int       `json:"occupiedBeds"`
	Status       string    `json:"status"`
	Beds         []BedDTO  `json:"beds"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateRoomRequest is the body of POST /api/rooms.
type CreateRoomRequest struct {
	RoomNumber string `json:"roomNumber"`
	Capacity   int    `json:"capacity"`
}

// UpdateRoomRequest is the body of PATCH /api/rooms/{id}.
type UpdateRoomRequest struct {
	RoomNumber *string `json:"roomNumber"`
	Capacity   *int    `json:"capacity"`
}

// BedDTO represents a bed.
type BedDTO struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"roomId"`
	BedNumber   string    `json:"bedNumber"`
	IsOccupied  bool      `json:"isOccupied"`
	TenantID    *string   `json:"tenantId"`
	MonthlyRent int64     `json:"monthlyRent"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateBedRequest is the body of POST /api/rooms/{id}/beds.
type CreateBedRequest struct {
	BedNumber   string `json:"bedNumber"`
	IsOccupied  bool   `json:"isOccupied"`
	TenantID    string `json:"tenantId"`
	MonthlyRent int64  `json:"monthlyRent"`
}

// UpdateBedRequest is the body of PATCH /api/beds/{id}.
type UpdateBedRequest struct {
	BedNumber   *string `json:"bedNumber"`
	IsOccupied  *bool   `json:"isOccupied"`
	TenantID    *string `json:"tenantId"`
	MonthlyRent *int64  `json:"monthlyRent"`
}

// =============================================================================
// PAYMENTS
// =============================================================================

// PaymentDTO represents a payment.
type PaymentDTO struct {
	ID        string      `json:"id"`
	TenantID  string      `json:"tenantId"`
	Amount    int64       `json:"amount"`
	Date      hostel.Date `json:"date"`
	Method    string      `json:"method"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// CreatePaymentRequest is the body of POST /api/tenants/{id}/payments.
// Date defaults to today.
type CreatePaymentRequest struct {
	Amount int64        `json:"amount"`
	Date   *hostel.Date `json:"date"`
	Method string       `json:"method"`
	Notes  string       `json:"notes"`
}

// =============================================================================
// DASHBOARD
// =============================================================================

// DashboardDTO is the operator's headline numbers. Rates are percentages
// serialized as decimal strings.
type DashboardDTO struct {
	TotalRooms       int             `json:"totalRooms"`
	OccupiedRooms    int             `json:"occupiedRooms"`
	TotalBeds        int             `json:"totalBeds"`
	OccupiedBeds     int             `json:"occupiedBeds"`
	ActiveTenants    int             `json:"activeTenants"`
	PendingTenants   int             `json:"pendingTenants"`
	OverdueTenants   int             `json:"overdueTenants"`
	MonthlyRevenue   int64           `json:"monthlyRevenue"`
	OccupancyRate    decimal.Decimal `json:"occupancyRate"`
	BedOccupancyRate decimal.Decimal `json:"bedOccupancyRate"`
	AsOf             hostel.Date     `json:"asOf"`
}

// ReminderDTO is one overdue tenant.
type ReminderDTO struct {
	TenantID    string      `json:"tenantId"`
	TenantName  string      `json:"tenantName"`
	RoomNumber  string      `json:"roomNumber"`
	Amount      int64       `json:"amount"`
	DueDate     hostel.Date `json:"dueDate"`
	DaysOverdue int         `json:"daysOverdue"`
}

// RemindersResponse wraps the last scan result.
type RemindersResponse struct {
	ScannedAt *time.Time    `json:"scannedAt"`
	Reminders []ReminderDTO `json:"reminders"`
}

// =============================================================================
// RECONCILIATION
// =============================================================================

// ReconciliationDTO reports what the room/bed repair did for one tenant.
type ReconciliationDTO struct {
	TenantID    string `json:"tenantId"`
	RoomID      string `json:"roomId"`
	BedID       string `json:"bedId,omitempty"`
	RoomCreated bool   `json:"roomCreated"`
	BedCreated  bool   `json:"bedCreated"`
}

// =============================================================================
// MISC
// =============================================================================

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toTenantDTO(t hostel.Tenant, today hostel.Date) TenantDTO {
	return TenantDTO{
		ID:               t.ID,
		Name:             t.Name,
		Email:            t.Email,
		Phone:            t.Phone,
		RoomNumber:       t.RoomNumber,
		BedNumber:        t.BedNumber,
		JoinDate:         t.JoinDate,
		Rent:             t.Rent,
		Deposit:          t.Deposit,
		Status:           string(t.Status),
		LastPayment:      t.LastPayment,
		NextPaymentDue:   t.NextPaymentDue,
		Address:          t.Address,
		EmergencyContact: t.EmergencyContact,
		Photo:            t.Photo,
		Overdue:          t.IsOverdue(today),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func toBedDTO(b hostel.Bed) BedDTO {
	dto := BedDTO{
		ID:          b.ID,
		RoomID:      b.RoomID,
		BedNumber:   b.BedNumber,
		IsOccupied:  b.IsOccupied,
		MonthlyRent: b.MonthlyRent,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.TenantID != "" {
		id := b.TenantID
		dto.TenantID = &id
	}
	return dto
}

func toRoomDTO(v hostel.RoomView) RoomDTO {
	beds := make([]BedDTO, len(v.Beds))
	for i, b := range v.Beds {
		beds[i] = toBedDTO(b)
	}
	return RoomDTO{
		ID:           v.ID,
		RoomNumber:   v.RoomNumber,
		Capacity:     v.Capacity,
		OccupiedBeds: v.Occupied,
		Status:       string(v.Status),
		Beds:         beds,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func toPaymentDTO(p hostel.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        p.ID,
		TenantID:  p.TenantID,
		Amount:    p.Amount,
		Date:      p.Date,
		Method:    p.Method,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toReminderDTOs(rs []hostel.Reminder) []ReminderDTO {
	out := make([]ReminderDTO, len(rs))
	for i, r := range rs {
		out[i] = ReminderDTO{
			TenantID:    r.TenantID,
			TenantName:  r.TenantName,
			RoomNumber:  r.RoomNumber,
			Amount:      r.Amount,
			DueDate:     r.DueDate,
			DaysOverdue: r.DaysOverdue,
		}
	}
	return out
}

func toReconciliationDTO(r hostel.Reconciliation) ReconciliationDTO {
	return ReconciliationDTO{
		TenantID:    r.TenantID,
		RoomID:      r.RoomID,
		BedID:       r.BedID,
		RoomCreated: r.RoomCreated,
		BedCreated:  r.BedCreated,
	}
}
