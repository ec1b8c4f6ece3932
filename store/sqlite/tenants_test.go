package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/hostelr/hostel"
)

func TestCreateTenant_GetReturnsSameRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2024, time.February, 1, 8, 15, 30, 123_000_000, time.UTC)
	want := sampleTenant("tenant-1", created)
	require.NoError(t, store.CreateTenant(ctx, want))

	got, err := store.GetTenant(ctx, "tenant-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestCreateTenant_OptionalFieldsRoundTripAsEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tn := hostel.Tenant{
		ID:        "tenant-min",
		Name:      "Minimal",
		Rent:      5000,
		Deposit:   0,
		Status:    hostel.StatusPending,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
	require.NoError(t, store.CreateTenant(ctx, tn))

	got, err := store.GetTenant(ctx, "tenant-min")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tn, *got)
	assert.Nil(t, got.LastPayment)
	assert.True(t, got.JoinDate.IsZero())
}

func TestGetTenant_MissingReturnsNil(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetTenant(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListTenants_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "middle", "new"} {
		require.NoError(t, store.CreateTenant(ctx, sampleTenant(id, base.Add(time.Duration(i)*time.Hour))))
	}

	tenants, err := store.ListTenants(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 3)
	assert.Equal(t, "new", tenants[0].ID)
	assert.Equal(t, "middle", tenants[1].ID)
	assert.Equal(t, "old", tenants[2].ID)
}

func TestCreateTenant_DuplicateIDFails(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateTenant(ctx, sampleTenant("dup", fixedNow)))
	assert.Error(t, store.CreateTenant(ctx, sampleTenant("dup", fixedNow)))
}

func TestUpdateTenant_MergesPatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	orig := sampleTenant("tenant-1", created)
	require.NoError(t, store.CreateTenant(ctx, orig))

	status := hostel.StatusInactive
	rent := int64(9500)
	paid := hostel.NewDate(2024, time.March, 2)
	require.NoError(t, store.UpdateTenant(ctx, "tenant-1", hostel.TenantPatch{
		Status:      &status,
		Rent:        &rent,
		LastPayment: &paid,
	}))

	got, err := store.GetTenant(ctx, "tenant-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	want := orig
	want.Status = hostel.StatusInactive
	want.Rent = 9500
	want.LastPayment = &paid
	want.UpdatedAt = fixedNow
	assert.Equal(t, want, *got)
	assert.Equal(t, created, got.CreatedAt, "created time is never patched")
}

func TestUpdateTenant_ZeroDateClearsOptionalDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateTenant(ctx, sampleTenant("tenant-1", fixedNow)))

	cleared := hostel.Date{}
	require.NoError(t, store.UpdateTenant(ctx, "tenant-1", hostel.TenantPatch{NextPaymentDue: &cleared}))

	got, err := store.GetTenant(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Nil(t, got.NextPaymentDue)
	assert.NotNil(t, got.LastPayment)
}

func TestUpdateTenant_MissingIsNoOp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	name := "Ghost"
	err := store.UpdateTenant(ctx, "missing", hostel.TenantPatch{Name: &name})
	assert.NoError(t, err)

	got, err := store.GetTenant(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got, "update must not create the row")
}

func TestDeleteTenant_ClearsBedLinkAndDeletesPayments(t *testing.T) {
	// GIVEN: a tenant occupying a bed with one payment
	// WHEN: the tenant is deleted
	// THEN: the bed stays with tenantId cleared, the payment is gone
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateTenant(ctx, sampleTenant("tenant-1", fixedNow)))
	require.NoError(t, store.CreateRoom(ctx, sampleRoom("room-1", "R-301", 2)))
	bed := sampleBed("bed-1", "room-1", "B-1")
	bed.IsOccupied = true
	bed.TenantID = "tenant-1"
	require.NoError(t, store.CreateBed(ctx, bed))
	require.NoError(t, store.CreatePayment(ctx, hostel.Payment{
		ID: "pay-1", TenantID: "tenant-1", Amount: 9000, Date: hostel.NewDate(2024, time.March, 1),
		Method: "Cash", CreatedAt: fixedNow, UpdatedAt: fixedNow,
	}))

	require.NoError(t, store.DeleteTenant(ctx, "tenant-1"))

	got, err := store.GetBed(ctx, "bed-1")
	require.NoError(t, err)
	require.NotNil(t, got, "bed must survive tenant deletion")
	assert.Empty(t, got.TenantID)
	assert.True(t, got.IsOccupied, "occupancy flag is not touched by the delete")

	pay, err := store.GetPayment(ctx, "pay-1")
	require.NoError(t, err)
	assert.Nil(t, pay)
}

func TestDeleteTenant_MissingIsNoOp(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.DeleteTenant(context.Background(), "missing"))
}
