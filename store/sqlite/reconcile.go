package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/warp/hostelr/hostel"
)

// =============================================================================
// RECONCILIATION - create rooms/beds named by a tenant's display strings
// =============================================================================

// EnsureRoomAndBedForTenant makes sure the room t.RoomNumber exists (created
// with capacity 1 if not) and, when t.BedNumber is set, that the bed exists in
// it (created occupied, linked to t, at t's rent). Rows that already exist are
// not touched, even when the bed is linked to someone else.
//
// The write lock is held across the lookups and inserts, but each statement
// commits on its own.
func (s *Store) EnsureRoomAndBedForTenant(ctx context.Context, t hostel.Tenant) (hostel.Reconciliation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensureRoomAndBed(ctx, t)
}

func (s *Store) ensureRoomAndBed(ctx context.Context, t hostel.Tenant) (hostel.Reconciliation, error) {
	res := hostel.Reconciliation{TenantID: t.ID}
	if strings.TrimSpace(t.RoomNumber) == "" {
		return res, &hostel.ValidationError{Field: "roomNumber", Message: "is required"}
	}

	at := s.now()

	room, err := s.getRoomByNumber(ctx, t.RoomNumber)
	if err != nil {
		return res, err
	}
	if room == nil {
		room = &hostel.Room{
			ID:         s.newID(),
			RoomNumber: t.RoomNumber,
			Capacity:   1,
			CreatedAt:  at,
			UpdatedAt:  at,
		}
		if err := s.createRoom(ctx, s.db, *room); err != nil {
			return res, err
		}
		res.RoomCreated = true
	}
	res.RoomID = room.ID

	if strings.TrimSpace(t.BedNumber) == "" {
		return res, nil
	}

	bed, err := s.getBedInRoom(ctx, room.ID, t.BedNumber)
	if err != nil {
		return res, err
	}
	if bed == nil {
		bed = &hostel.Bed{
			ID:          s.newID(),
			RoomID:      room.ID,
			BedNumber:   t.BedNumber,
			IsOccupied:  true,
			TenantID:    t.ID,
			MonthlyRent: t.Rent,
			CreatedAt:   at,
			UpdatedAt:   at,
		}
		if err := s.createBed(ctx, s.db, *bed); err != nil {
			return res, err
		}
		res.BedCreated = true
	}
	res.BedID = bed.ID

	if res.Changed() {
		s.log.Info("reconciled tenant assignment",
			zap.String("tenant_id", t.ID),
			zap.String("room", t.RoomNumber),
			zap.String("bed", t.BedNumber),
			zap.Bool("room_created", res.RoomCreated),
			zap.Bool("bed_created", res.BedCreated),
		)
	}
	return res, nil
}

// ReconcileAll runs the reconciliation for every tenant. Tenants that fail
// are skipped; their errors are joined into the returned error.
func (s *Store) ReconcileAll(ctx context.Context) ([]hostel.Reconciliation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenants, err := s.listTenants(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]hostel.Reconciliation, 0, len(tenants))
	var errs []error
	for _, t := range tenants {
		res, err := s.ensureRoomAndBed(ctx, t)
		if err != nil {
			errs = append(errs, fmt.Errorf("tenant %s: %w", t.ID, err))
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}
