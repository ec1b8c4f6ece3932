package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/warp/hostelr/hostel"
)

// =============================================================================
// PAYMENT STORE
// =============================================================================

const paymentColumns = "id, tenantId, amount, date, method, notes, createdAt, updatedAt"

// ListPaymentsForTenant returns a tenant's payments, latest date first.
func (s *Store) ListPaymentsForTenant(ctx context.Context, tenantID string) ([]hostel.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE tenantId = ? ORDER BY date DESC", tenantID)
	if err != nil {
		return nil, translateError("list payments", err)
	}
	defer rows.Close()

	payments := []hostel.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetPayment retrieves a payment by ID. Returns (nil, nil) if absent.
func (s *Store) GetPayment(ctx context.Context, id string) (*hostel.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := scanPayment(s.db.QueryRowContext(ctx, "SELECT "+paymentColumns+" FROM payments WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePayment inserts a payment. An unknown tenant fails with hostel.ErrReferenceNotFound.
func (s *Store) CreatePayment(ctx context.Context, p hostel.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createPayment(ctx, s.db, p)
}

func (s *Store) createPayment(ctx context.Context, db execer, p hostel.Payment) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO payments ("+paymentColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.TenantID, p.Amount, p.Date.String(), p.Method, nullString(p.Notes),
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	return translateError("create payment", err)
}

// DeletePayment removes a payment.
func (s *Store) DeletePayment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", id)
	return translateError("delete payment", err)
}

func scanPayment(sc scanner) (hostel.Payment, error) {
	var (
		p                          hostel.Payment
		date, createdAt, updatedAt string
		notes                      sql.NullString
	)

	err := sc.Scan(&p.ID, &p.TenantID, &p.Amount, &date, &p.Method, &notes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, err
		}
		return p, translateError("scan payment", err)
	}
	p.Date, _ = hostel.ParseDate(date)
	p.Notes = notes.String
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}
