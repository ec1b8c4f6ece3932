package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/warp/hostelr/hostel"
)

// =============================================================================
// BED STORE
// =============================================================================

const bedColumns = "id, roomId, bedNumber, isOccupied, tenantId, monthlyRent, createdAt, updatedAt"

// ListBedsByRoom returns the beds of a room ordered by bed number.
func (s *Store) ListBedsByRoom(ctx context.Context, roomID string) ([]hostel.Bed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+bedColumns+" FROM beds WHERE roomId = ? ORDER BY bedNumber ASC", roomID)
	if err != nil {
		return nil, translateError("list beds", err)
	}
	defer rows.Close()

	beds := []hostel.Bed{}
	for rows.Next() {
		b, err := scanBed(rows)
		if err != nil {
			return nil, err
		}
		beds = append(beds, b)
	}
	return beds, rows.Err()
}

// GetBed retrieves a bed by ID. Returns (nil, nil) if absent.
func (s *Store) GetBed(ctx context.Context, id string) (*hostel.Bed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryBed(ctx, "SELECT "+bedColumns+" FROM beds WHERE id = ?", id)
}

// GetBedInRoom retrieves a bed by room and bed number. Returns (nil, nil) if absent.
func (s *Store) GetBedInRoom(ctx context.Context, roomID, bedNumber string) (*hostel.Bed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getBedInRoom(ctx, roomID, bedNumber)
}

func (s *Store) getBedInRoom(ctx context.Context, roomID, bedNumber string) (*hostel.Bed, error) {
	return s.queryBed(ctx,
		"SELECT "+bedColumns+" FROM beds WHERE roomId = ? AND bedNumber = ?", roomID, bedNumber)
}

func (s *Store) queryBed(ctx context.Context, query string, args ...any) (*hostel.Bed, error) {
	b, err := scanBed(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBed inserts a bed. A bed number already used in the room fails
// with hostel.ErrDuplicateBedNumber; an unknown room or tenant fails with
// hostel.ErrReferenceNotFound.
func (s *Store) CreateBed(ctx context.Context, b hostel.Bed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createBed(ctx, s.db, b)
}

func (s *Store) createBed(ctx context.Context, db execer, b hostel.Bed) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO beds ("+bedColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		b.ID, b.RoomID, b.BedNumber, boolInt(b.IsOccupied), nullString(b.TenantID),
		b.MonthlyRent, formatTime(b.CreatedAt), formatTime(b.UpdatedAt),
	)
	return translateError("create bed", err)
}

// UpdateBed merges patch over the stored bed. A missing bed is a no-op.
func (s *Store) UpdateBed(ctx context.Context, id string, patch hostel.BedPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.queryBed(ctx, "SELECT "+bedColumns+" FROM beds WHERE id = ?", id)
	if err != nil || current == nil {
		return err
	}
	b := patch.Apply(*current, s.now())

	_, err = s.db.ExecContext(ctx,
		"UPDATE beds SET bedNumber = ?, isOccupied = ?, tenantId = ?, monthlyRent = ?, updatedAt = ? WHERE id = ?",
		b.BedNumber, boolInt(b.IsOccupied), nullString(b.TenantID), b.MonthlyRent, formatTime(b.UpdatedAt), id,
	)
	return translateError("update bed", err)
}

// DeleteBed removes a bed.
func (s *Store) DeleteBed(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM beds WHERE id = ?", id)
	return translateError("delete bed", err)
}

func scanBed(sc scanner) (hostel.Bed, error) {
	var (
		b                    hostel.Bed
		occupied             int64
		tenantID             sql.NullString
		createdAt, updatedAt string
	)

	err := sc.Scan(&b.ID, &b.RoomID, &b.BedNumber, &occupied, &tenantID, &b.MonthlyRent, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, err
		}
		return b, translateError("scan bed", err)
	}
	b.IsOccupied = occupied != 0
	b.TenantID = tenantID.String
	b.CreatedAt = parseTime(createdAt)
	b.UpdatedAt = parseTime(updatedAt)
	return b, nil
}
