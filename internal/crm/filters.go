package crm

import (
	"fmt"
	"strings"
)

// MaxBedroomsFilter is the largest bedroom count offered as a filter.
const MaxBedroomsFilter = 4

// NextLeadStatus returns the status filter after s. The unset filter comes
// before the first status and after the last one.
func NextLeadStatus(s LeadStatus) LeadStatus {
	return cycle(LeadStatuses, s)
}

// NextPropertyType returns the type filter after t, cycling through unset.
func NextPropertyType(t PropertyType) PropertyType {
	return cycle(PropertyTypes, t)
}

// NextBedrooms cycles the bedroom filter through any (0), 1, ...,
// MaxBedroomsFilter.
func NextBedrooms(n int) int {
	if n < 0 || n >= MaxBedroomsFilter {
		return 0
	}
	return n + 1
}

func cycle[T comparable](values []T, cur T) T {
	var zero T
	if cur == zero {
		return values[0]
	}
	for i, v := range values {
		if v == cur && i+1 < len(values) {
			return values[i+1]
		}
	}
	return zero
}

// Label describes the active lead filters, or "" when none is set.
func (f LeadFilters) Label() string {
	var parts []string
	if f.Status != "" {
		parts = append(parts, "status "+string(f.Status))
	}
	if f.PropertyType != "" {
		parts = append(parts, "type "+string(f.PropertyType))
	}
	if f.Location != "" {
		parts = append(parts, "in "+f.Location)
	}
	return strings.Join(parts, ", ")
}

// Label describes the active property filters, or "" when none is set.
func (f PropertyFilters) Label() string {
	var parts []string
	if f.Type != "" {
		parts = append(parts, "type "+string(f.Type))
	}
	if f.Bedrooms > 0 {
		parts = append(parts, fmt.Sprintf("%d BHK", f.Bedrooms))
	}
	if f.Location != "" {
		parts = append(parts, "in "+f.Location)
	}
	if f.Availability != "" {
		parts = append(parts, string(f.Availability))
	}
	return strings.Join(parts, ", ")
}

// Matches reports whether l passes the filters. Search is left to the server.
func (f LeadFilters) Matches(l Lead) bool {
	switch {
	case f.Status != "" && l.Status != f.Status:
		return false
	case f.PropertyType != "" && PropertyType(l.PropertyTypePreference) != f.PropertyType:
		return false
	case f.Location != "" && !containsFold(l.LocationPreference, strings.ToLower(f.Location)):
		return false
	case f.MinScore > 0 && l.Score < f.MinScore:
		return false
	case f.MaxScore > 0 && l.Score > f.MaxScore:
		return false
	}
	return true
}

// Matches reports whether p passes the filters. Search is left to the server.
func (f PropertyFilters) Matches(p Property) bool {
	switch {
	case f.Type != "" && p.Type != f.Type:
		return false
	case f.Location != "" && !containsFold(p.Location, strings.ToLower(f.Location)):
		return false
	case f.MinRent > 0 && p.Rent < f.MinRent:
		return false
	case f.MaxRent > 0 && p.Rent > f.MaxRent:
		return false
	case f.Bedrooms > 0 && p.Bedrooms != f.Bedrooms:
		return false
	case f.Availability != "" && p.Availability != f.Availability:
		return false
	}
	return true
}
