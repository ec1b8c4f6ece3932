/*
handlers.go - HTTP API handlers for the hostel record store

PURPOSE:
  Exposes tenants, rooms, beds and payments over REST. Handles JSON
  decoding, validation and status codes, and delegates persistence to a
  hostel.Store.

ENDPOINTS:
  Tenants:
    GET    /api/tenants                   List (?status=Active&q=rahul)
    POST   /api/tenants                   Create, then repair room/bed
    GET    /api/tenants/{id}              Get
    PATCH  /api/tenants/{id}              Partial update
    DELETE /api/tenants/{id}              Delete (payments go too)
    POST   /api/tenants/{id}/reconcile    Repair room/bed for one tenant
    GET    /api/tenants/{id}/payments     Payment history
    POST   /api/tenants/{id}/payments     Record payment

  Rooms and beds:
    GET    /api/rooms                     List with beds and status
    POST   /api/rooms                     Create
    GET    /api/rooms/{id}                Get with beds
    PATCH  /api/rooms/{id}                Partial update
    DELETE /api/rooms/{id}                Delete (beds go too)
    GET    /api/rooms/{id}/beds           List beds
    POST   /api/rooms/{id}/beds           Create bed
    PATCH  /api/beds/{id}                 Partial update
    DELETE /api/beds/{id}                 Delete

  Other:
    DELETE /api/payments/{id}             Delete payment
    GET    /api/dashboard                 Summary numbers
    GET    /api/reminders                 Overdue tenants
    POST   /api/admin/reconcile           Repair room/bed for every tenant
    POST   /api/admin/reset               Wipe and reseed sample data

ERROR HANDLING:
  Errors are returned as JSON {"error","details"} with:
  - 400: hostel.ErrInvalidInput, malformed body
  - 404: missing tenant/room/bed/payment
  - 409: duplicate room number, duplicate bed in room, dangling reference
  - 500: anything else

  The store treats updates and deletes of missing rows as no-ops; the
  handlers look the row up first so clients get a 404.

SECURITY NOTE:
  No authentication. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/warp/hostelr/hostel"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Store is what the API needs from persistence: the record store plus the
// sample-data controls used by /api/admin/reset.
type Store interface {
	hostel.Store
	Seed(ctx context.Context) (bool, error)
	Reset(ctx context.Context) error
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store     Store
	Reminders *ReminderScanner
	Clock     hostel.Clock
	NewID     hostel.IDGenerator

	log *zap.Logger
}

// NewHandler creates a handler. The reminder scanner is created but not
// started; cmd/server starts it.
func NewHandler(store Store, metrics *Metrics, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Store:     store,
		Reminders: NewReminderScanner(store, metrics, log),
		NewID:     hostel.NewID,
		log:       log.Named("api"),
	}
}

func (h *Handler) now() time.Time {
	return h.Clock.Now().Truncate(time.Millisecond)
}

func (h *Handler) today() hostel.Date {
	return hostel.DateOf(h.Clock.Now())
}

// =============================================================================
// TENANT HANDLERS
// =============================================================================

// ListTenants returns tenants newest first.
// GET /api/tenants?status=Active&q=rahul
func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	filter := hostel.TenantFilter{Query: r.URL.Query().Get("q")}
	if s := r.URL.Query().Get("status"); s != "" && s != "All" {
		status, err := hostel.ParseStatus(s)
		if err != nil {
			h.fail(w, "Invalid status filter", err)
			return
		}
		filter.Status = status
	}

	tenants, err := h.Store.ListTenants(r.Context())
	if err != nil {
		h.fail(w, "Failed to list tenants", err)
		return
	}

	today := h.today()
	tenants = hostel.FilterTenants(tenants, filter)
	dtos := make([]TenantDTO, len(tenants))
	for i, t := range tenants {
		dtos[i] = toTenantDTO(t, today)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateTenant adds a tenant with the add-tenant form defaults, then makes
// sure the named room and bed exist.
// POST /api/tenants
func (h *Handler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req CreateTenantRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, "Invalid request body", err)
		return
	}

	now := h.now()
	today := hostel.DateOf(now)
	t := hostel.Tenant{
		ID:               h.NewID(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		RoomNumber:       req.RoomNumber,
		BedNumber:        req.BedNumber,
		JoinDate:         today,
		Rent:             req.Rent,
		Deposit:          req.Deposit,
		Status:           hostel.StatusPending,
		NextPaymentDue:   hostel.DatePtr(today.AddDays(30)),
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		Photo:            req.Photo,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if req.JoinDate != nil && !req.JoinDate.IsZero() {
		t.JoinDate = *req.JoinDate
	}
	if req.NextPaymentDue != nil && !req.NextPaymentDue.IsZero() {
		t.NextPaymentDue = hostel.DatePtr(*req.NextPaymentDue)
	}
	if req.Status != "" {
		t.Status = hostel.TenantStatus(req.Status)
	}

	if err := hostel.ValidateNewTenant(t); err != nil {
		h.fail(w, "Invalid tenant", err)
		return
	}
	if err := h.Store.CreateTenant(r.Context(), t); err != nil {
		h.fail(w, "Failed to create tenant", err)
		return
	}

	// The tenant row is committed; a failed repair is reported in the log
	// and can be retried through /api/tenants/{id}/reconcile.
	if _, err := h.Store.EnsureRoomAndBedForTenant(r.Context(), t); err != nil {
		h.log.Warn("room/bed reconciliation failed after tenant create",
			zap.String("tenant_id", t.ID), zap.Error(err))
	}

	writeJSON(w, http.StatusCreated, toTenantDTO(t, today))
}

// GetTenant returns one tenant.
// GET /api/tenants/{id}
func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	t, ok := h.loadTenant(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toTenantDTO(*t, h.today()))
}

// UpdateTenant merges the supplied fields.
// PATCH /api/tenants/{id}
func (h *Handler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	var req UpdateTenantRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, "Invalid request body", err)
		return
	}
	patch, err := req.Patch()
	if err != nil {
		h.fail(w, "Invalid tenant update", err)
		return
	}

	t, ok := h.loadTenant(w, r)
	if !ok {
		return
	}
	if err := h.Store.UpdateTenant(r.Context(), t.ID, patch); err != nil {
		h.fail(w, "Failed to update tenant", err)
		return
	}

	updated, ok := h.loadTenant(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toTenantDTO(*updated, h.today()))
}

// DeleteTenant removes a tenant and its payments. Beds linked to the
// tenant keep their row with the link cleared.
// DELETE /api/tenants/{id}
func (h *Handler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	t, ok := h.loadTenant(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteTenant(r.Context(), t.ID); err != nil {
		h.fail(w, "Failed to delete tenant", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReconcileTenant creates the tenant's room and bed if missing.
// POST /api/tenants/{id}/reconcile
func (h *Handler) ReconcileTenant(w http.ResponseWriter, r *http.Request) {
	t, ok := h.loadTenant(w, r)
	if !ok {
		return
	}
	res, err := h.Store.EnsureRoomAndBedForTenant(r.Context(), *t)
	if err != nil {
		h.fail(w, "Failed to reconcile room and bed", err)
		return
	}
	writeJSON(w, http.StatusOK, toReconciliationDTO(res))
}

func (h *Handler) loadTenant(w http.ResponseWriter, r *http.Request) (*hostel.Tenant, bool) {
	t, err := h.Store.GetTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Failed to load tenant", err)
		return nil, false
	}
	if t == nil {
		h.fail(w, "Tenant not found", hostel.ErrTenantNotFound)
		return nil, false
	}
	return t, true
}

// =============================================================================
// PAYMENT HANDLERS
// =============================================================================

// ListPayments returns a tenant's payments, latest first.
// GET /api/tenants/{id}/payments
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	t, ok := h.loadTenant(w, r)
	if !ok {
		return
	}
	payments, err := h.Store.ListPaymentsForTenant(r.Context(), t.ID)
	if err != nil {
		h.fail(w, "Failed to list payments", err)
		return
	}
	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = toPaymentDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreatePayment records a payment and stamps the tenant's lastPayment.
// A backdated payment older than the current lastPayment leaves it alone.
// POST /api/tenants/{id}/payments
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, "Invalid request body", err)
		return
	}
	t, ok := h.loadTenant(w, r)
	if !ok {
		return
	}

	now := h.now()
	p := hostel.Payment{
		ID:        h.NewID(),
		TenantID:  t.ID,
		Amount:    req.Amount,
		Date:      hostel.DateOf(now),
		Method:    req.Method,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Date != nil && !req.Date.IsZero() {
		p.Date = *req.Date
	}

	if err := hostel.ValidateNewPayment(p); err != nil {
		h.fail(w, "Invalid payment", err)
		return
	}
	if err := h.Store.CreatePayment(r.Context(), p); err != nil {
		h.fail(w, "Failed to record payment", err)
		return
	}

	if t.LastPayment == nil || p.Date.After(*t.LastPayment) {
		paid := p.Date
		if err := h.Store.UpdateTenant(r.Context(), t.ID, hostel.TenantPatch{LastPayment: &paid}); err != nil {
			h.log.Warn("failed to stamp last payment",
				zap.String("tenant_id", t.ID), zap.String("payment_id", p.ID), zap.Error(err))
		}
	}

	writeJSON(w, http.StatusCreated, toPaymentDTO(p))
}

// DeletePayment removes one payment.
// DELETE /api/payments/{id}
func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Store.GetPayment(r.Context(), id)
	if err != nil {
		h.fail(w, "Failed to load payment", err)
		return
	}
	if p == nil {
		h.fail(w, "Payment not found", hostel.ErrPaymentNotFound)
		return
	}
	if err := h.Store.DeletePayment(r.Context(), id); err != nil {
		h.fail(w, "Failed to delete payment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// ROOM HANDLERS
// =============================================================================

// ListRooms returns every room with its beds, ordered by room number.
// GET /api/rooms
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	views, err := h.roomViews(r.Context())
	if err != nil {
		h.fail(w, "Failed to list rooms", err)
		return
	}
	dtos := make([]RoomDTO, len(views))
	for i, v := range views {
		dtos[i] = toRoomDTO(v)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateRoom adds a room.
// POST /api/rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, "Invalid request body", err)
		return
	}

	now := h.now()
	room := hostel.Room{
		ID:         h.NewID(),
		RoomNumber: req.RoomNumber,
		Capacity:   req.Capacity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := hostel.ValidateNewRoom(room); err != nil {
		h.fail(w, "Invalid room", err)
		return
	}
	if err := h.Store.CreateRoom(r.Context(), room); err != nil {
		h.fail(w, "Failed to create room", err)
		return
	}
	writeJSON(w, http.StatusCreated, toRoomDTO(hostel.NewRoomView(room, []hostel.Bed{})))
}

// GetRoom returns a room with its beds.
// GET /api/rooms/{id}
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := h.loadRoom(w, r)
	if !ok {
		return
	}
	beds, err := h.Store.ListBedsByRoom(r.Context(), room.ID)
	if err != nil {
		h.fail(w, "Failed to list beds", err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomDTO(hostel.NewRoomView(*room, beds)))
}

// UpdateRoom merges the supplied fields.
// PATCH /api/rooms/{id}
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, "Invalid request body", err)
		return
	}
	patch := hostel.RoomPatch{RoomNumber: req.RoomNumber, Capacity: req.Capacity}
	if err := patch.Validate(); err != nil {
		h.fail(w, "Invalid room update", err)
		return
	}

	room, ok := h.loadRoom(w, r)
	if !ok {
		return
	}
	if err := h.Store.UpdateRoom(r.Context(), room.ID, patch); err != nil {
		h.fail(w, "Failed to update room", err)
		return
	}
	h.GetRoom(w, r)
}

// DeleteRoom removes a room and all of its beds.
// DELETE /api/rooms/{id}
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := h.loadRoom(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteRoom(r.Context(), room.ID); err != nil {
		h.fail(w, "Failed to delete room", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) loadRoom(w http.ResponseWriter, r *http.Request) (*hostel.Room, bool) {
	room, err := h.Store.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Failed to load room", err)
		return nil, false
	}
	if room == nil {
		h.fail(w, "Room not found", hostel.ErrRoomNotFound)
		return nil, false
	}
	return room, true
}

func (h *Handler) roomViews(ctx context.Context) ([]hostel.RoomView, error) {
	rooms, err := h.Store.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]hostel.RoomView, len(rooms))
	for i, room := range rooms {
		beds, err := h.Store.ListBedsByRoom(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		views[i] = hostel.NewRoomView(room, beds)
	}
	return views, nil
}

// =============================================================================
// BED HANDLERS
// =============================================================================

// ListBeds returns the beds of a room ordered by bed number.
// GET /api/rooms/{id}/beds
func (h *Handler) ListBeds(w http.ResponseWriter, r *http.Request) {
	room, ok := h.loadRoom(w, r)
	if !ok {
		return
	}
	beds, err := h.Store.ListBedsByRoom(r.Context(), room.ID)
	if err != nil {
		h.fail(w, "Failed to list beds", err)
		return
	}
	dtos := make([]BedDTO, len(beds))
	for i, b := range beds {
		dtos[i] = toBedDTO(b)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateBed adds a bed to a room.
// POST /api/rooms/{id}/beds
func (h *Handler) CreateBed(w http.ResponseWriter, r *http.Request) {
	var req CreateBedRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, "Invalid request body", err)
		return
	}
	room, ok := h.loadRoom(w, r)
	if !ok {
		return
	}

	now := h.now()
	bed := hostel.Bed{
		ID:          h.NewID(),
		RoomID:      room.ID,
		BedNumber:   req.BedNumber,
		IsOccupied:  req.IsOccupied,
		TenantID:    req.TenantID,
		MonthlyRent: req.MonthlyRent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := hostel.ValidateNewBed(bed); err != nil {
		h.fail(w, "Invalid bed", err)
		return
	}
	if err := h.Store.CreateBed(r.Context(), bed); err != nil {
		h.fail(w, "Failed to create bed", err)
		return
	}
	writeJSON(w, http.StatusCreated, toBedDTO(bed))
}

// UpdateBed merges the supplied fields. "tenantId": "" unlinks the tenant.
// PATCH /api/beds/{id}
func (h *Handler) UpdateBed(w http.ResponseWriter, r *http.Request) {
	var req UpdateBedRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, "Invalid request body", err)
		return
	}
	patch := hostel.BedPatch{
		BedNumber:   req.BedNumber,
		IsOccupied:  req.IsOccupied,
		TenantID:    req.TenantID,
		MonthlyRent: req.MonthlyRent,
	}
	if err := patch.Validate(); err != nil {
		h.fail(w, "Invalid bed update", err)
		return
	}

	bed, ok := h.loadBed(w, r)
	if !ok {
		return
	}
	if err := h.Store.UpdateBed(r.Context(), bed.ID, patch); err != nil {
		h.fail(w, "Failed to update bed", err)
		return
	}

	updated, ok := h.loadBed(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toBedDTO(*updated))
}

// DeleteBed removes one bed.
// DELETE /api/beds/{id}
func (h *Handler) DeleteBed(w http.ResponseWriter, r *http.Request) {
	bed, ok := h.loadBed(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteBed(r.Context(), bed.ID); err != nil {
		h.fail(w, "Failed to delete bed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) loadBed(w http.ResponseWriter, r *http.Request) (*hostel.Bed, bool) {
	bed, err := h.Store.GetBed(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Failed to load bed", err)
		return nil, false
	}
	if bed == nil {
		h.fail(w, "Bed not found", hostel.ErrBedNotFound)
		return nil, false
	}
	return bed, true
}

// =============================================================================
// DASHBOARD AND REMINDERS
// =============================================================================

// GetDashboard returns the summary numbers as of today.
// GET /api/dashboard
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	views, err := h.roomViews(r.Context())
	if err != nil {
		h.fail(w, "Failed to load rooms", err)
		return
	}
	tenants, err := h.Store.ListTenants(r.Context())
	if err != nil {
		h.fail(w, "Failed to load tenants", err)
		return
	}

	today := h.today()
	s := hostel.Summarize(views, tenants, today)
	writeJSON(w, http.StatusOK, DashboardDTO{
		TotalRooms:       s.TotalRooms,
		OccupiedRooms:    s.OccupiedRooms,
		TotalBeds:        s.TotalBeds,
		OccupiedBeds:     s.OccupiedBeds,
		ActiveTenants:    s.ActiveTenants,
		PendingTenants:   s.PendingTenants,
		OverdueTenants:   s.OverdueTenants,
		MonthlyRevenue:   s.MonthlyRevenue,
		OccupancyRate:    s.OccupancyRate,
		BedOccupancyRate: s.BedOccupancyRate,
		AsOf:             today,
	})
}

// ListReminders returns the overdue tenants from the last scan, scanning
// now if no scan has run yet or ?refresh=true is given.
// GET /api/reminders
func (h *Handler) ListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, scannedAt, ok := h.Reminders.Latest()
	if !ok || r.URL.Query().Get("refresh") == "true" {
		if _, err := h.Reminders.RunNow(r.Context()); err != nil {
			h.fail(w, "Failed to scan for overdue payments", err)
			return
		}
		reminders, scannedAt, _ = h.Reminders.Latest()
	}
	writeJSON(w, http.StatusOK, RemindersResponse{
		ScannedAt: &scannedAt,
		Reminders: toReminderDTOs(reminders),
	})
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// ReconcileAllResponse is the body of POST /api/admin/reconcile.
type ReconcileAllResponse struct {
	Results []ReconciliationDTO `json:"results"`
	Errors  []string            `json:"errors,omitempty"`
}

// ReconcileAll repairs rooms and beds for every tenant. Per-tenant failures
// are reported alongside the successes.
// POST /api/admin/reconcile
func (h *Handler) ReconcileAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.Store.ReconcileAll(r.Context())

	resp := ReconcileAllResponse{Results: make([]ReconciliationDTO, len(results))}
	for i, res := range results {
		resp.Results[i] = toReconciliationDTO(res)
	}
	if err != nil {
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				resp.Errors = append(resp.Errors, e.Error())
			}
		} else {
			h.fail(w, "Failed to reconcile", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ResetDatabase wipes every record and loads the sample data.
// POST /api/admin/reset
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		h.fail(w, "Failed to reset database", err)
		return
	}
	seeded, err := h.Store.Seed(r.Context())
	if err != nil {
		h.fail(w, "Failed to seed database", err)
		return
	}
	h.log.Info("database reset", zap.Bool("seeded", seeded))
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "seeded": seeded})
}

// Health reports liveness and store reachability.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "Store unavailable", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// fail writes err with the status its category maps to.
func (h *Handler) fail(w http.ResponseWriter, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error(message, zap.Error(err))
	}
	writeError(w, status, message, err)
}

func statusFor(err error) int {
	switch {
	case hostel.IsClientError(err):
		return http.StatusBadRequest
	case hostel.IsNotFound(err):
		return http.StatusNotFound
	case hostel.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the body into v. Decoding failures are client errors.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &hostel.ValidationError{Field: "body", Message: err.Error()}
	}
	return nil
}
