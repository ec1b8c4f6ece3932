package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/warp/hostelr/hostel"
)

// =============================================================================
// ROOM STORE
// =============================================================================

const roomColumns = "id, roomNumber, capacity, createdAt, updatedAt"

// ListRooms returns all rooms ordered by room number.
func (s *Store) ListRooms(ctx context.Context) ([]hostel.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT "+roomColumns+" FROM rooms ORDER BY roomNumber ASC")
	if err != nil {
		return nil, translateError("list rooms", err)
	}
	defer rows.Close()

	rooms := []hostel.Room{}
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

// GetRoom retrieves a room by ID. Returns (nil, nil) if absent.
func (s *Store) GetRoom(ctx context.Context, id string) (*hostel.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryRoom(ctx, "SELECT "+roomColumns+" FROM rooms WHERE id = ?", id)
}

// GetRoomByNumber retrieves a room by its number. Returns (nil, nil) if absent.
func (s *Store) GetRoomByNumber(ctx context.Context, roomNumber string) (*hostel.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getRoomByNumber(ctx, roomNumber)
}

func (s *Store) getRoomByNumber(ctx context.Context, roomNumber string) (*hostel.Room, error) {
	return s.queryRoom(ctx, "SELECT "+roomColumns+" FROM rooms WHERE roomNumber = ?", roomNumber)
}

func (s *Store) queryRoom(ctx context.Context, query string, args ...any) (*hostel.Room, error) {
	r, err := scanRoom(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRoom inserts a room. A used room number fails with hostel.ErrDuplicateRoomNumber.
func (s *Store) CreateRoom(ctx context.Context, r hostel.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createRoom(ctx, s.db, r)
}

func (s *Store) createRoom(ctx context.Context, db execer, r hostel.Room) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO rooms ("+roomColumns+") VALUES (?, ?, ?, ?, ?)",
		r.ID, r.RoomNumber, r.Capacity, formatTime(r.CreatedAt), formatTime(r.UpdatedAt),
	)
	return translateError("create room", err)
}

// UpdateRoom merges patch over the stored room. A missing room is a no-op.
func (s *Store) UpdateRoom(ctx context.Context, id string, patch hostel.RoomPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.queryRoom(ctx, "SELECT "+roomColumns+" FROM rooms WHERE id = ?", id)
	if err != nil || current == nil {
		return err
	}
	r := patch.Apply(*current, s.now())

	_, err = s.db.ExecContext(ctx,
		"UPDATE rooms SET roomNumber = ?, capacity = ?, updatedAt = ? WHERE id = ?",
		r.RoomNumber, r.Capacity, formatTime(r.UpdatedAt), id,
	)
	return translateError("update room", err)
}

// DeleteRoom removes a room and, by cascade, its beds.
func (s *Store) DeleteRoom(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = ?", id)
	return translateError("delete room", err)
}

func scanRoom(sc scanner) (hostel.Room, error) {
	var r hostel.Room
	var createdAt, updatedAt string

	if err := sc.Scan(&r.ID, &r.RoomNumber, &r.Capacity, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, translateError("scan room", err)
	}
	r.CreatedAt = parseTime(createdAt)
	r.UpdatedAt = parseTime(updatedAt)
	return r, nil
}
