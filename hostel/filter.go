package hostel

import "strings"

// TenantFilter narrows a tenant list the way the tenants screen does.
// An empty Status means all statuses; Query matches name or room number,
// case-insensitively.
type TenantFilter struct {
	Status TenantStatus
	Query  string
}

// Match reports whether t passes the filter.
func (f TenantFilter) Match(t Tenant) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.RoomNumber), q)
}

// FilterTenants returns the tenants matching f, preserving order.
func FilterTenants(tenants []Tenant, f TenantFilter) []Tenant {
	out := make([]Tenant, 0, len(tenants))
	for _, t := range tenants {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
