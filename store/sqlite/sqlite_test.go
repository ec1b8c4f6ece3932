package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/hostelr/hostel"
	"github.com/warp/hostelr/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

var fixedNow = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...sqlite.Option) *sqlite.Store {
	t.Helper()
	opts = append([]sqlite.Option{sqlite.WithClock(func() time.Time { return fixedNow })}, opts...)
	store, err := sqlite.New(":memory:", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// sequentialIDs returns predictable identifiers: prefix-1, prefix-2, ...
func sequentialIDs(prefix string) hostel.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func sampleTenant(id string, created time.Time) hostel.Tenant {
	return hostel.Tenant{
		ID:               id,
		Name:             "Anita Rao",
		Email:            "anita@example.com",
		Phone:            "+91 9000000001",
		RoomNumber:       "R-301",
		BedNumber:        "B-1",
		JoinDate:         hostel.NewDate(2024, time.February, 1),
		Rent:             9000,
		Deposit:          18000,
		Status:           hostel.StatusActive,
		LastPayment:      hostel.DatePtr(hostel.NewDate(2024, time.February, 1)),
		NextPaymentDue:   hostel.DatePtr(hostel.NewDate(2024, time.March, 1)),
		Address:          "Pune, India",
		EmergencyContact: "+91 9000000002",
		Photo:            "file:///photos/anita.jpg",
		CreatedAt:        created,
		UpdatedAt:        created,
	}
}

func sampleRoom(id, number string, capacity int) hostel.Room {
	return hostel.Room{ID: id, RoomNumber: number, Capacity: capacity, CreatedAt: fixedNow, UpdatedAt: fixedNow}
}

func sampleBed(id, roomID, number string) hostel.Bed {
	return hostel.Bed{ID: id, RoomID: roomID, BedNumber: number, MonthlyRent: 8000, CreatedAt: fixedNow, UpdatedAt: fixedNow}
}

// =============================================================================
// SCHEMA
// =============================================================================

func TestNew_EnablesForeignKeys(t *testing.T) {
	store := newTestStore(t)

	on, err := store.ForeignKeysEnabled(context.Background())
	require.NoError(t, err)
	assert.True(t, on)
}

func TestNew_ReopenKeepsData(t *testing.T) {
	// GIVEN: a file database with one room
	// WHEN: it is opened a second time
	// THEN: the schema step does not drop anything
	path := filepath.Join(t.TempDir(), "hostelr.db")
	ctx := context.Background()

	first, err := sqlite.New(path)
	require.NoError(t, err)
	require.NoError(t, first.CreateRoom(ctx, sampleRoom("room-1", "R-1", 2)))
	require.NoError(t, first.Close())

	second, err := sqlite.New(path)
	require.NoError(t, err)
	defer second.Close()

	rooms, err := second.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "R-1", rooms[0].RoomNumber)
}

// =============================================================================
// SEED
// =============================================================================

func TestSeed_EmptyStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seeded, err := store.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	tenants, err := store.ListTenants(ctx)
	require.NoError(t, err)
	assert.Len(t, tenants, 2)

	rooms, err := store.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "R-101", rooms[0].RoomNumber)
	assert.Equal(t, 2, rooms[0].Capacity)
	assert.Equal(t, "R-205", rooms[1].RoomNumber)
	assert.Equal(t, 3, rooms[1].Capacity)

	byName := map[string]hostel.Tenant{}
	for _, tn := range tenants {
		byName[tn.Name] = tn
	}
	rahul, priya := byName["Rahul Sharma"], byName["Priya Patel"]
	require.NotEmpty(t, rahul.ID)
	require.NotEmpty(t, priya.ID)

	beds101, err := store.ListBedsByRoom(ctx, rooms[0].ID)
	require.NoError(t, err)
	require.Len(t, beds101, 2)
	assert.Equal(t, "B-1", beds101[0].BedNumber)
	assert.True(t, beds101[0].IsOccupied)
	assert.Equal(t, rahul.ID, beds101[0].TenantID)
	assert.Equal(t, "B-2", beds101[1].BedNumber)
	assert.False(t, beds101[1].IsOccupied)
	assert.Empty(t, beds101[1].TenantID)

	beds205, err := store.ListBedsByRoom(ctx, rooms[1].ID)
	require.NoError(t, err)
	require.Len(t, beds205, 3)
	assert.True(t, beds205[0].IsOccupied)
	assert.Equal(t, priya.ID, beds205[0].TenantID)
	assert.False(t, beds205[1].IsOccupied)
	assert.False(t, beds205[2].IsOccupied)
	for _, b := range beds205 {
		assert.Equal(t, int64(10000), b.MonthlyRent)
	}

	payments, err := store.ListPaymentsForTenant(ctx, rahul.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, int64(12000), payments[0].Amount)
	assert.Equal(t, "UPI", payments[0].Method)
	assert.Equal(t, "January rent", payments[0].Notes)
	assert.Equal(t, "2024-01-01", payments[0].Date.String())

	none, err := store.ListPaymentsForTenant(ctx, priya.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSeed_SkipsWhenTenantsExist(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seeded, err := store.Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = store.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded, "second seed must not insert duplicates")

	tenants, err := store.ListTenants(ctx)
	require.NoError(t, err)
	assert.Len(t, tenants, 2)
}

func TestSeed_UsesIDGenerator(t *testing.T) {
	store := newTestStore(t, sqlite.WithIDGenerator(sequentialIDs("seed")))
	ctx := context.Background()

	_, err := store.Seed(ctx)
	require.NoError(t, err)

	rahul, err := store.GetTenant(ctx, "seed-1")
	require.NoError(t, err)
	require.NotNil(t, rahul)
	assert.Equal(t, "Rahul Sharma", rahul.Name)
	assert.Equal(t, fixedNow, rahul.CreatedAt)
}

func TestReset_ClearsEverything(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Seed(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Reset(ctx))

	tenants, err := store.ListTenants(ctx)
	require.NoError(t, err)
	assert.Empty(t, tenants)
	rooms, err := store.ListRooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)

	seeded, err := store.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded, "reset store seeds again")
}
