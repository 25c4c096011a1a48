package domain

import "strings"

// FilterSet holds the optional attribute constraints extracted from a query.
// A nil field means no constraint; present constraints combine with AND.
type FilterSet struct {
	MaxPrice      *float64 `json:"max_price"`
	MinPrice      *float64 `json:"min_price"`
	Brand         *string  `json:"brand"`
	MinCamera     *float64 `json:"min_camera"`
	MinBattery    *float64 `json:"min_battery"`
	MinCharging   *float64 `json:"min_charging"`
	OS            *string  `json:"os"`
	MaxScreenSize *float64 `json:"max_screen_size"`
}

// IsEmpty reports whether no constraint is set.
func (f FilterSet) IsEmpty() bool {
	return f.MaxPrice == nil && f.MinPrice == nil && f.Brand == nil &&
		f.MinCamera == nil && f.MinBattery == nil && f.MinCharging == nil &&
		f.OS == nil && f.MaxScreenSize == nil
}

// Matches reports whether the product satisfies every present constraint.
// String constraints are case-insensitive substring matches.
func (f FilterSet) Matches(p Product) bool {
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.Brand != nil && !containsFold(p.Brand, *f.Brand) {
		return false
	}
	if f.MinCamera != nil && p.Camera < *f.MinCamera {
		return false
	}
	if f.MinBattery != nil && p.Battery < *f.MinBattery {
		return false
	}
	if f.MinCharging != nil && p.Charging < *f.MinCharging {
		return false
	}
	if f.OS != nil && !containsFold(p.OS, *f.OS) {
		return false
	}
	if f.MaxScreenSize != nil && p.ScreenSize > *f.MaxScreenSize {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
