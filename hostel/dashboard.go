/*
dashboard.go - Read-side projections for the operator dashboard

PURPOSE:
  The persisted shapes are deliberately thin. The dashboard and room list
  want derived values: how many beds in a room are taken, whether the room
  is full, how many tenants are behind on rent. Everything here is computed
  on demand from rows read out of the store; nothing is written back.

PERCENTAGES:
  Rates use decimal.Decimal so 1/3 occupancy renders as 33, not 33.333336.
  A property with no rooms (or no beds) has a rate of zero.

SEE ALSO:
  - api/handlers.go: GET /api/dashboard, GET /api/rooms
  - api/reminders.go: periodic overdue scan
*/
package hostel

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// =============================================================================
// ROOM VIEW
// =============================================================================

// RoomStatus is derived from bed occupancy, never stored.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "Available"
	RoomFull      RoomStatus = "Full"
)

// RoomView is a room together with its beds.
type RoomView struct {
	Room
	Beds     []Bed
	Occupied int
	Status   RoomStatus
}

// NewRoomView counts occupied beds and derives the room status.
func NewRoomView(room Room, beds []Bed) RoomView {
	v := RoomView{Room: room, Beds: beds, Status: RoomAvailable}
	for _, b := range beds {
		if b.IsOccupied {
			v.Occupied++
		}
	}
	if room.Capacity > 0 && v.Occupied >= room.Capacity {
		v.Status = RoomFull
	}
	return v
}

// =============================================================================
// SUMMARY
// =============================================================================

// Summary is the dashboard headline numbers.
type Summary struct {
	TotalRooms     int
	OccupiedRooms  int
	TotalBeds      int
	OccupiedBeds   int
	ActiveTenants  int
	PendingTenants int
	OverdueTenants int
	MonthlyRevenue int64

	// OccupancyRate is occupied rooms over total rooms, in whole percent.
	OccupancyRate decimal.Decimal
	// BedOccupancyRate is occupied beds over total beds, one decimal place.
	BedOccupancyRate decimal.Decimal
}

// Summarize aggregates rooms and tenants as of today.
func Summarize(rooms []RoomView, tenants []Tenant, today Date) Summary {
	var s Summary
	s.TotalRooms = len(rooms)
	for _, r := range rooms {
		if r.Occupied > 0 {
			s.OccupiedRooms++
		}
		s.TotalBeds += len(r.Beds)
		s.OccupiedBeds += r.Occupied
	}

	for _, t := range tenants {
		switch t.Status {
		case StatusActive:
			s.ActiveTenants++
		case StatusPending:
			s.PendingTenants++
		}
		if t.Status != StatusInactive && t.IsOverdue(today) {
			s.OverdueTenants++
		}
		s.MonthlyRevenue += t.Rent
	}

	s.OccupancyRate = percent(s.OccupiedRooms, s.TotalRooms, 0)
	s.BedOccupancyRate = percent(s.OccupiedBeds, s.TotalBeds, 1)
	return s
}

func percent(part, whole int, places int32) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(places)
}

// =============================================================================
// PAYMENT REMINDERS
// =============================================================================

// Reminder is an overdue tenant.
type Reminder struct {
	TenantID    string
	TenantName  string
	RoomNumber  string
	Amount      int64
	DueDate     Date
	DaysOverdue int
}

// Reminders lists overdue tenants, most overdue first.
// Inactive tenants are skipped.
func Reminders(tenants []Tenant, today Date) []Reminder {
	out := []Reminder{}
	for _, t := range tenants {
		if t.Status == StatusInactive || !t.IsOverdue(today) {
			continue
		}
		out = append(out, Reminder{
			TenantID:    t.ID,
			TenantName:  t.Name,
			RoomNumber:  t.RoomNumber,
			Amount:      t.Rent,
			DueDate:     *t.NextPaymentDue,
			DaysOverdue: today.DaysSince(*t.NextPaymentDue),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysOverdue != out[j].DaysOverdue {
			return out[i].DaysOverdue > out[j].DaysOverdue
		}
		return out[i].TenantName < out[j].TenantName
	})
	return out
}
