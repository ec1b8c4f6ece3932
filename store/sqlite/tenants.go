package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/warp/hostelr/hostel"
)

// =============================================================================
// TENANT STORE (hostel.TenantStore interface)
// =============================================================================

const tenantColumns = `id, name, email, phone, roomNumber, bedNumber, joinDate, rent, deposit, status,
	lastPayment, nextPaymentDue, address, emergencyContact, photo, createdAt, updatedAt`

// ListTenants returns all tenants, newest first.
func (s *Store) ListTenants(ctx context.Context) ([]hostel.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listTenants(ctx)
}

func (s *Store) listTenants(ctx context.Context) ([]hostel.Tenant, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+tenantColumns+" FROM tenants ORDER BY createdAt DESC")
	if err != nil {
		return nil, translateError("list tenants", err)
	}
	defer rows.Close()

	tenants := []hostel.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

// GetTenant retrieves a tenant by ID. Returns (nil, nil) if absent.
func (s *Store) GetTenant(ctx context.Context, id string) (*hostel.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getTenant(ctx, id)
}

func (s *Store) getTenant(ctx context.Context, id string) (*hostel.Tenant, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+tenantColumns+" FROM tenants WHERE id = ?", id)
	t, err := scanTenant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTenant inserts a fully populated tenant.
func (s *Store) CreateTenant(ctx context.Context, t hostel.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createTenant(ctx, s.db, t)
}

func (s *Store) createTenant(ctx context.Context, db execer, t hostel.Tenant) error {
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		nullString(t.Email),
		nullString(t.Phone),
		nullString(t.RoomNumber),
		nullString(t.BedNumber),
		dateValue(t.JoinDate),
		t.Rent,
		t.Deposit,
		string(t.Status),
		nullDate(t.LastPayment),
		nullDate(t.NextPaymentDue),
		nullString(t.Address),
		nullString(t.EmergencyContact),
		nullString(t.Photo),
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
	)
	return translateError("create tenant", err)
}

// UpdateTenant merges patch over the stored tenant. A missing tenant is a no-op.
func (s *Store) UpdateTenant(ctx context.Context, id string, patch hostel.TenantPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.getTenant(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		s.log.Debug("update of missing tenant ignored")
		return nil
	}
	t := patch.Apply(*current, s.now())

	query := `
		UPDATE tenants SET
			name = ?, email = ?, phone = ?, roomNumber = ?, bedNumber = ?, joinDate = ?,
			rent = ?, deposit = ?, status = ?, lastPayment = ?, nextPaymentDue = ?,
			address = ?, emergencyContact = ?, photo = ?, updatedAt = ?
		WHERE id = ?
	`

	_, err = s.db.ExecContext(ctx, query,
		t.Name,
		nullString(t.Email),
		nullString(t.Phone),
		nullString(t.RoomNumber),
		nullString(t.BedNumber),
		dateValue(t.JoinDate),
		t.Rent,
		t.Deposit,
		string(t.Status),
		nullDate(t.LastPayment),
		nullDate(t.NextPaymentDue),
		nullString(t.Address),
		nullString(t.EmergencyContact),
		nullString(t.Photo),
		formatTime(t.UpdatedAt),
		id,
	)
	return translateError("update tenant", err)
}

// DeleteTenant removes a tenant. Its payments go with it; beds it occupied
// keep their row with tenantId cleared.
func (s *Store) DeleteTenant(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM tenants WHERE id = ?", id)
	return translateError("delete tenant", err)
}

func scanTenant(sc scanner) (hostel.Tenant, error) {
	var (
		t                                   hostel.Tenant
		email, phone, roomNumber, bedNumber sql.NullString
		joinDate, lastPayment, nextDue      sql.NullString
		address, emergencyContact, photo    sql.NullString
		status, createdAt, updatedAt        string
	)

	err := sc.Scan(
		&t.ID, &t.Name, &email, &phone, &roomNumber, &bedNumber, &joinDate,
		&t.Rent, &t.Deposit, &status, &lastPayment, &nextDue,
		&address, &emergencyContact, &photo, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, err
		}
		return t, translateError("scan tenant", err)
	}

	t.Email = email.String
	t.Phone = phone.String
	t.RoomNumber = roomNumber.String
	t.BedNumber = bedNumber.String
	t.JoinDate = parseDate(joinDate)
	t.Status = hostel.TenantStatus(status)
	t.LastPayment = parseDatePtr(lastPayment)
	t.NextPaymentDue = parseDatePtr(nextDue)
	t.Address = address.String
	t.EmergencyContact = emergencyContact.String
	t.Photo = photo.String
	t.CreatedAt = parseTime(createdAt)
	t.UpdatedAt = parseTime(updatedAt)
	return t, nil
}
