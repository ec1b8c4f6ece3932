package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/warp/hostelr/hostel"
)

// =============================================================================
// SEED DATA - first-run demo records
// =============================================================================

// Seed inserts the sample tenants, rooms, beds and payment when the tenants
// table is empty. It reports whether anything was inserted. The inserts share
// one SQL transaction so a failure leaves the store empty and a later launch
// seeds again.
func (s *Store) Seed(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tenants").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count tenants: %w", err)
	}
	if count > 0 {
		s.log.Debug("seed skipped, store not empty", zap.Int("tenants", count))
		return false, nil
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if err := s.insertSeed(ctx, sqlTx); err != nil {
		return false, err
	}
	if err := sqlTx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}

	s.log.Info("seeded sample data", zap.Int("tenants", 2), zap.Int("rooms", 2), zap.Int("beds", 5))
	return true, nil
}

func (s *Store) insertSeed(ctx context.Context, tx *sql.Tx) error {
	at := s.now()
	date := hostel.MustParseDate

	rahul := hostel.Tenant{
		ID:               s.newID(),
		Name:             "Rahul Sharma",
		Email:            "rahul.sharma@email.com",
		Phone:            "+91 9876543210",
		RoomNumber:       "R-101",
		BedNumber:        "B-1",
		JoinDate:         date("2024-01-15"),
		Rent:             12000,
		Deposit:          24000,
		Status:           hostel.StatusActive,
		LastPayment:      hostel.DatePtr(date("2024-01-01")),
		NextPaymentDue:   hostel.DatePtr(date("2024-02-01")),
		Address:          "Delhi, India",
		EmergencyContact: "+91 9876543211",
		CreatedAt:        at,
		UpdatedAt:        at,
	}
	priya := hostel.Tenant{
		ID:               s.newID(),
		Name:             "Priya Patel",
		Email:            "priya.patel@email.com",
		Phone:            "+91 9876543212",
		RoomNumber:       "R-205",
		BedNumber:        "B-2",
		JoinDate:         date("2024-01-20"),
		Rent:             10000,
		Deposit:          20000,
		Status:           hostel.StatusActive,
		LastPayment:      hostel.DatePtr(date("2023-12-28")),
		NextPaymentDue:   hostel.DatePtr(date("2024-01-28")),
		Address:          "Mumbai, India",
		EmergencyContact: "+91 9876543213",
		CreatedAt:        at,
		UpdatedAt:        at,
	}
	for _, t := range []hostel.Tenant{rahul, priya} {
		if err := s.createTenant(ctx, tx, t); err != nil {
			return err
		}
	}

	r101 := hostel.Room{ID: s.newID(), RoomNumber: "R-101", Capacity: 2, CreatedAt: at, UpdatedAt: at}
	r205 := hostel.Room{ID: s.newID(), RoomNumber: "R-205", Capacity: 3, CreatedAt: at, UpdatedAt: at}
	for _, r := range []hostel.Room{r101, r205} {
		if err := s.createRoom(ctx, tx, r); err != nil {
			return err
		}
	}

	// Priya's tenant record says B-2 but the seeded bed link is on B-1;
	// the app shipped with this mismatch and it is kept as is.
	beds := []hostel.Bed{
		{RoomID: r101.ID, BedNumber: "B-1", IsOccupied: true, TenantID: rahul.ID, MonthlyRent: 12000},
		{RoomID: r101.ID, BedNumber: "B-2", MonthlyRent: 12000},
		{RoomID: r205.ID, BedNumber: "B-1", IsOccupied: true, TenantID: priya.ID, MonthlyRent: 10000},
		{RoomID: r205.ID, BedNumber: "B-2", MonthlyRent: 10000},
		{RoomID: r205.ID, BedNumber: "B-3", MonthlyRent: 10000},
	}
	for _, b := range beds {
		b.ID = s.newID()
		b.CreatedAt, b.UpdatedAt = at, at
		if err := s.createBed(ctx, tx, b); err != nil {
			return err
		}
	}

	return s.createPayment(ctx, tx, hostel.Payment{
		ID:        s.newID(),
		TenantID:  rahul.ID,
		Amount:    12000,
		Date:      date("2024-01-01"),
		Method:    "UPI",
		Notes:     "January rent",
		CreatedAt: at,
		UpdatedAt: at,
	})
}
