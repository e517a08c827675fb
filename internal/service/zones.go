// Package service implements the delivery fulfillment eligibility and
// scheduling engine: zone resolution, fee quoting, minimum-order validation,
// preparation-window calculation, slot catalogs, and checkout orchestration.
package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
)

// prefixLength is the number of characters of a normalized postal code used
// as the zone lookup key (Canadian forward sortation area).
const prefixLength = 3

// DefaultZones is the canonical delivery zone table. Fees and minimums are
// flat per zone; the prefix sets are disjoint across zones.
func DefaultZones() []model.Zone {
	return []model.Zone{
		{
			Name:               "Zone 1",
			PostalPrefixes:     []string{"H7X", "H7Y"},
			FeeAmount:          decimal.RequireFromString("15.00"),
			MinimumOrderAmount: decimal.RequireFromString("50.00"),
		},
		{
			Name:               "Zone 2",
			PostalPrefixes:     []string{"H7R", "H7P", "H7T", "H7W", "H7V"},
			FeeAmount:          decimal.RequireFromString("25.00"),
			MinimumOrderAmount: decimal.RequireFromString("100.00"),
		},
		{
			Name:               "Zone 3",
			PostalPrefixes:     []string{"H7L", "H7M", "H7S", "H7G", "H7N", "J7P", "J7G"},
			FeeAmount:          decimal.RequireFromString("30.00"),
			MinimumOrderAmount: decimal.RequireFromString("125.00"),
		},
		{
			Name: "Zone 4",
			PostalPrefixes: []string{
				"H8Z", "H8Y", "H9B", "H4S", "H4Y", "H9P", "H8T", "H8S", "H4T",
				"H4M", "H4R", "H4K", "H4J", "H4L", "J7A", "J7E", "J7H", "J7R",
			},
			FeeAmount:          decimal.RequireFromString("30.00"),
			MinimumOrderAmount: decimal.RequireFromString("200.00"),
		},
		{
			Name: "Zone 5",
			PostalPrefixes: []string{
				"H2L", "H2J", "H2T", "H2W", "H2X", "H2Y", "H2K", "H2H", "H2Z",
				"J7C", "J7B", "J6Z",
			},
			FeeAmount:          decimal.RequireFromString("40.00"),
			MinimumOrderAmount: decimal.RequireFromString("200.00"),
		},
		{
			Name: "Out-of-Zone",
			PostalPrefixes: []string{
				"H1A", "H1B", "H1C", "H1E", "H1G", "H1H", "H1J", "H1K", "H1L",
				"H1M", "H1N", "H1P", "H1R", "H1S", "H1T", "H1V", "H1W", "H1X",
				"H1Y", "H1Z",
				"H2A", "H2B", "H2C", "H2E", "H2G", "H2M", "H2N", "H2P", "H2R",
				"H2S", "H2V",
				"H3A", "H3B", "H3C", "H3E", "H3G", "H3H", "H3J", "H3K", "H3L",
				"H3M", "H3N", "H3P", "H3R", "H3S", "H3T", "H3V", "H3W", "H3X",
				"H3Y", "H3Z",
				"H4A", "H4B", "H4C", "H4E", "H4G",
			},
			FeeAmount:          decimal.RequireFromString("40.00"),
			MinimumOrderAmount: decimal.RequireFromString("400.00"),
		},
	}
}

// NormalizePostalCode strips all whitespace, uppercases, and truncates the
// raw postal code to the prefix length. The result is the zone lookup key.
// Normalization is idempotent.
func NormalizePostalCode(raw string) string {
	normalized := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	if len(normalized) > prefixLength {
		normalized = normalized[:prefixLength]
	}
	return normalized
}

// ZoneRegistry is the immutable prefix-to-zone index. It is built once at
// startup and safe for concurrent reads; no mutation operations exist.
type ZoneRegistry struct {
	zones    []model.Zone
	byPrefix map[string]int
}

// NewZoneRegistry builds a registry from the given zone table. It returns an
// error if any prefix is claimed by more than one zone or is not exactly
// three characters, so misconfiguration fails at load time rather than being
// tolerated at call time.
func NewZoneRegistry(zones []model.Zone) (*ZoneRegistry, error) {
	r := &ZoneRegistry{
		zones:    zones,
		byPrefix: make(map[string]int),
	}

	for i, zone := range zones {
		for _, prefix := range zone.PostalPrefixes {
			if len(prefix) != prefixLength {
				return nil, fmt.Errorf("zone %q: prefix %q is not %d characters", zone.Name, prefix, prefixLength)
			}
			if prefix != NormalizePostalCode(prefix) {
				return nil, fmt.Errorf("zone %q: prefix %q is not normalized", zone.Name, prefix)
			}
			if existing, ok := r.byPrefix[prefix]; ok {
				return nil, fmt.Errorf("prefix %q claimed by both %q and %q", prefix, zones[existing].Name, zone.Name)
			}
			r.byPrefix[prefix] = i
		}
	}

	return r, nil
}

// MustNewZoneRegistry is like NewZoneRegistry but panics on configuration
// errors. Used at process start with the canonical table.
func MustNewZoneRegistry(zones []model.Zone) *ZoneRegistry {
	r, err := NewZoneRegistry(zones)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve normalizes the raw postal code and looks up its zone.
// An invalid or unlisted code yields ok=false. No fuzzy matching.
func (r *ZoneRegistry) Resolve(rawPostalCode string) (model.Zone, bool) {
	prefix := NormalizePostalCode(rawPostalCode)
	if len(prefix) != prefixLength {
		return model.Zone{}, false
	}
	idx, ok := r.byPrefix[prefix]
	if !ok {
		return model.Zone{}, false
	}
	return r.zones[idx], true
}

// Zones returns the zone table in registry order.
func (r *ZoneRegistry) Zones() []model.Zone {
	return r.zones
}
