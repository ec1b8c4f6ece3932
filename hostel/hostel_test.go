package hostel

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

func TestNewID_IsUUID(t *testing.T) {
	id := NewID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewID())
}

func TestNewID_FallbackWhenRandomFails(t *testing.T) {
	failing := func() (uuid.UUID, error) { return uuid.Nil, errors.New("no entropy") }
	at := time.UnixMilli(1_700_000_000_000)

	id := newIDFrom(failing, func() time.Time { return at })
	suffix := "loyw3v28" // 1700000000000 in base 36
	assert.True(t, len(id) > len(suffix))
	assert.Equal(t, suffix, id[len(id)-len(suffix):])

	_, err := uuid.Parse(id)
	assert.Error(t, err, "fallback ids are not UUIDs")

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[newIDFrom(failing, func() time.Time { return at })] = true
	}
	assert.Greater(t, len(seen), 95, "random fragment varies even at the same millisecond")
}

// =============================================================================
// DATES
// =============================================================================

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.January, 15), d)
	assert.Equal(t, "2024-01-15", d.String())

	d, err = ParseDate("2024-01-15T23:10:00Z")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.January, 15), d)

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Due  Date  `json:"due"`
		Paid *Date `json:"paid"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-02-01","paid":null}`), &payload))
	assert.Equal(t, NewDate(2024, time.February, 1), payload.Due)
	assert.Nil(t, payload.Paid)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-02-01","paid":null}`, string(out))
}

func TestDate_DaysSince(t *testing.T) {
	a := NewDate(2024, time.March, 1)
	b := NewDate(2024, time.February, 1)
	assert.Equal(t, 29, a.DaysSince(b))
	assert.Equal(t, -29, b.DaysSince(a))
}

// =============================================================================
// PATCHES AND VALIDATION
// =============================================================================

func TestTenantPatch_Apply(t *testing.T) {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	due := NewDate(2024, time.February, 1)
	orig := Tenant{ID: "t1", Name: "A", Rent: 100, Status: StatusPending, NextPaymentDue: &due, CreatedAt: created, UpdatedAt: created}

	name := "B"
	cleared := Date{}
	got := TenantPatch{Name: &name, NextPaymentDue: &cleared}.Apply(orig, updated)

	assert.Equal(t, "B", got.Name)
	assert.Equal(t, int64(100), got.Rent)
	assert.Nil(t, got.NextPaymentDue)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, updated, got.UpdatedAt)
	assert.Equal(t, "A", orig.Name, "original untouched")
}

func TestValidateNewTenant(t *testing.T) {
	valid := Tenant{Name: "A", Email: "a@x", Phone: "1", RoomNumber: "R-1", Status: StatusPending}
	assert.NoError(t, ValidateNewTenant(valid))

	missing := valid
	missing.Phone = ""
	err := ValidateNewTenant(missing)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "phone", vErr.Field)
	assert.True(t, IsClientError(err))

	badStatus := valid
	badStatus.Status = "Evicted"
	assert.ErrorIs(t, ValidateNewTenant(badStatus), ErrInvalidInput)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("Inactive")
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, s)

	_, err = ParseStatus("active")
	assert.Error(t, err, "statuses are case sensitive")
}

// =============================================================================
// FILTER
// =============================================================================

func TestFilterTenants(t *testing.T) {
	tenants := []Tenant{
		{Name: "Rahul Sharma", RoomNumber: "R-101", Status: StatusActive},
		{Name: "Priya Patel", RoomNumber: "R-205", Status: StatusActive},
		{Name: "Amit Kumar", RoomNumber: "R-102", Status: StatusPending},
	}

	assert.Len(t, FilterTenants(tenants, TenantFilter{}), 3)
	assert.Len(t, FilterTenants(tenants, TenantFilter{Status: StatusActive}), 2)

	byRoom := FilterTenants(tenants, TenantFilter{Query: "r-10"})
	require.Len(t, byRoom, 2)
	assert.Equal(t, "Rahul Sharma", byRoom[0].Name)
	assert.Equal(t, "Amit Kumar", byRoom[1].Name)

	both := FilterTenants(tenants, TenantFilter{Status: StatusPending, Query: "AMIT"})
	require.Len(t, both, 1)
	assert.Equal(t, "Amit Kumar", both[0].Name)
}

// =============================================================================
// DASHBOARD
// =============================================================================

func TestSummarize(t *testing.T) {
	today := NewDate(2024, time.February, 10)
	past := NewDate(2024, time.February, 1)
	future := NewDate(2024, time.March, 1)

	rooms := []RoomView{
		NewRoomView(Room{ID: "r1", Capacity: 2}, []Bed{{IsOccupied: true}, {}}),
		NewRoomView(Room{ID: "r2", Capacity: 1}, []Bed{{IsOccupied: true}}),
		NewRoomView(Room{ID: "r3", Capacity: 3}, []Bed{{}, {}, {}}),
	}
	tenants := []Tenant{
		{Status: StatusActive, Rent: 12000, NextPaymentDue: &past},
		{Status: StatusActive, Rent: 10000, NextPaymentDue: &future},
		{Status: StatusPending, Rent: 8000},
		{Status: StatusInactive, Rent: 7000, NextPaymentDue: &past},
	}

	s := Summarize(rooms, tenants, today)
	assert.Equal(t, 3, s.TotalRooms)
	assert.Equal(t, 2, s.OccupiedRooms)
	assert.Equal(t, 6, s.TotalBeds)
	assert.Equal(t, 2, s.OccupiedBeds)
	assert.Equal(t, 2, s.ActiveTenants)
	assert.Equal(t, 1, s.PendingTenants)
	assert.Equal(t, 1, s.OverdueTenants)
	assert.Equal(t, int64(37000), s.MonthlyRevenue)
	assert.Equal(t, "67", s.OccupancyRate.String())
	assert.Equal(t, "33.3", s.BedOccupancyRate.String())

	assert.Equal(t, RoomAvailable, rooms[0].Status)
	assert.Equal(t, RoomFull, rooms[1].Status)
}

func TestSummarize_NoRooms(t *testing.T) {
	s := Summarize(nil, nil, NewDate(2024, time.January, 1))
	assert.True(t, s.OccupancyRate.IsZero())
	assert.True(t, s.BedOccupancyRate.IsZero())
}

func TestReminders_MostOverdueFirst(t *testing.T) {
	today := NewDate(2024, time.February, 10)
	d1 := NewDate(2024, time.February, 1)
	d2 := NewDate(2024, time.January, 28)
	future := NewDate(2024, time.March, 1)

	tenants := []Tenant{
		{ID: "rahul", Name: "Rahul", Rent: 12000, Status: StatusActive, NextPaymentDue: &d1},
		{ID: "priya", Name: "Priya", Rent: 10000, Status: StatusActive, NextPaymentDue: &d2},
		{ID: "amit", Name: "Amit", Status: StatusActive, NextPaymentDue: &future},
		{ID: "gone", Name: "Gone", Status: StatusInactive, NextPaymentDue: &d2},
		{ID: "new", Name: "New", Status: StatusPending},
	}

	rem := Reminders(tenants, today)
	require.Len(t, rem, 2)
	assert.Equal(t, "priya", rem[0].TenantID)
	assert.Equal(t, 13, rem[0].DaysOverdue)
	assert.Equal(t, "rahul", rem[1].TenantID)
	assert.Equal(t, 9, rem[1].DaysOverdue)
	assert.Equal(t, int64(12000), rem[1].Amount)
}
