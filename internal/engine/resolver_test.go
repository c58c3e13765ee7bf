package engine

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDB is an in-memory ZoneDatabase for resolver tests. Using Etc/GMT
// identifiers keeps the offsets fixed regardless of season, so the expected
// local hours never depend on the date chosen for the test instant.
type stubDB struct {
	zones     []string
	countries map[string][]string
	names     map[string]string
}

func (s *stubDB) Zones() []string                    { return s.zones }
func (s *stubDB) ZoneCountries(zone string) []string { return s.countries[zone] }
func (s *stubDB) CountryName(code string) (string, bool) {
	name, ok := s.names[code]
	return name, ok
}

// newStubDB builds a small database spanning UTC+0 and UTC+5.
// Note the IANA sign convention: Etc/GMT-5 is five hours AHEAD of UTC.
func newStubDB() *stubDB {
	return &stubDB{
		zones: []string{"Etc/GMT", "Etc/GMT-5"},
		countries: map[string][]string{
			"Etc/GMT":   {"PT"},
			"Etc/GMT-5": {"PK"},
		},
		names: map[string]string{
			"PT": "Portugal",
			"PK": "Pakistan",
		},
	}
}

// TestResolve_TargetHourSelection verifies that an instant selects exactly the
// zones whose local wall clock reads the target hour, and that the same
// instant picks different countries as the hour shifts around the globe.
func TestResolve_TargetHourSelection(t *testing.T) {
	r := &Resolver{DB: newStubDB()}
	opts := DefaultOptions() // 17

	tests := []struct {
		name     string
		now      time.Time
		expected []string
		desc     string
	}{
		{
			name:     "UTC noon, only UTC+5 is at 17",
			now:      time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
			expected: []string{"PAKISTAN"},
			desc:     "12:00 UTC is 17:00 in Etc/GMT-5 but 12:00 in Etc/GMT",
		},
		{
			name:     "UTC 17:30, only UTC+0 is at 17",
			now:      time.Date(2026, 1, 15, 17, 30, 0, 0, time.UTC),
			expected: []string{"PORTUGAL"},
			desc:     "17:30 UTC is 22:30 in Etc/GMT-5 but 17:30 in Etc/GMT",
		},
		{
			name:     "UTC 03:00, nobody is at 17",
			now:      time.Date(2026, 1, 15, 3, 0, 0, 0, time.UTC),
			expected: []string{},
			desc:     "An empty match is a valid result, not an error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(tt.now, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Countries, tt.desc)
		})
	}
}

// TestResolve_WindowEdges pins the inclusive/exclusive bounds of the matching
// window: the whole hour [H:00:00, H:59:59] matches, (H+1):00:00 does not.
func TestResolve_WindowEdges(t *testing.T) {
	db := &stubDB{
		zones:     []string{"Etc/GMT"},
		countries: map[string][]string{"Etc/GMT": {"PT"}},
		names:     map[string]string{"PT": "Portugal"},
	}
	r := &Resolver{DB: db}
	opts := Options{TargetHour: 17}

	tests := []struct {
		name    string
		now     time.Time
		matches bool
	}{
		{"start of window 17:00:00", time.Date(2026, 1, 15, 17, 0, 0, 0, time.UTC), true},
		{"middle of window 17:07:00", time.Date(2026, 1, 15, 17, 7, 0, 0, time.UTC), true},
		{"last second 17:59:59", time.Date(2026, 1, 15, 17, 59, 59, 0, time.UTC), true},
		{"window closed 18:00:00", time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC), false},
		{"before window 16:59:59", time.Date(2026, 1, 15, 16, 59, 59, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(tt.now, opts)
			require.NoError(t, err)
			if tt.matches {
				assert.Equal(t, []string{"PORTUGAL"}, res.Countries)
			} else {
				assert.Empty(t, res.Countries)
			}
		})
	}
}

// TestResolve_ExactHour verifies the narrowed top-of-hour mode.
func TestResolve_ExactHour(t *testing.T) {
	db := &stubDB{
		zones:     []string{"Etc/GMT"},
		countries: map[string][]string{"Etc/GMT": {"PT"}},
		names:     map[string]string{"PT": "Portugal"},
	}
	r := &Resolver{DB: db}
	opts := Options{TargetHour: 17, ExactHour: true}

	res, err := r.Resolve(time.Date(2026, 1, 15, 17, 0, 30, 0, time.UTC), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"PORTUGAL"}, res.Countries, "second 30 of minute zero still counts")

	res, err = r.Resolve(time.Date(2026, 1, 15, 17, 1, 0, 0, time.UTC), opts)
	require.NoError(t, err)
	assert.Empty(t, res.Countries, "minute 1 is outside the exact-hour window")
}

// TestResolve_DedupeAndOrder verifies that a country reachable through
// multiple zones appears once, uppercased, in ascending order.
func TestResolve_DedupeAndOrder(t *testing.T) {
	db := &stubDB{
		// Both zones are UTC+5; PK owns both, so Pakistan must not double up.
		zones: []string{"Etc/GMT-5", "Indian/Maldives"},
		countries: map[string][]string{
			"Etc/GMT-5":       {"PK", "UZ"},
			"Indian/Maldives": {"PK", "MV"},
		},
		names: map[string]string{
			"PK": "Pakistan",
			"UZ": "Uzbekistan",
			"MV": "Maldives",
		},
	}
	r := &Resolver{DB: db}

	res, err := r.Resolve(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"MALDIVES", "PAKISTAN", "UZBEKISTAN"}, res.Countries)
}

// TestResolve_Idempotence verifies that repeated passes over the same frozen
// instant produce identical results.
func TestResolve_Idempotence(t *testing.T) {
	r := &Resolver{DB: newStubDB()}
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	first, err := r.Resolve(now, DefaultOptions())
	require.NoError(t, err)
	second, err := r.Resolve(now, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first.Countries, second.Countries)
	assert.Equal(t, first.ZonesMatched, second.ZonesMatched)
	assert.Equal(t, first.ComputedAtUTC, second.ComputedAtUTC)
}

// TestResolve_SkipsUnresolvableZones verifies that a corrupt zone identifier
// is counted and skipped without aborting the pass.
func TestResolve_SkipsUnresolvableZones(t *testing.T) {
	db := &stubDB{
		zones: []string{"Etc/GMT-5", "Not/A_Real_Zone"},
		countries: map[string][]string{
			"Etc/GMT-5": {"PK"},
		},
		names: map[string]string{"PK": "Pakistan"},
	}
	r := &Resolver{DB: db}

	res, err := r.Resolve(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC), DefaultOptions())
	require.NoError(t, err, "a bad zone must not fail the whole pass")
	assert.Equal(t, []string{"PAKISTAN"}, res.Countries)
	assert.Equal(t, 1, res.ZonesSkipped)
	assert.Equal(t, 1, res.ZonesMatched)
}

// TestResolve_SilentSkips verifies zones with no country mapping and codes
// with no display name are dropped without error or skip-count noise.
func TestResolve_SilentSkips(t *testing.T) {
	db := &stubDB{
		zones: []string{"Etc/GMT-5", "Indian/Maldives"},
		countries: map[string][]string{
			"Etc/GMT-5": {"XX"}, // code without a display name
			// Indian/Maldives has no country mapping at all
		},
		names: map[string]string{},
	}
	r := &Resolver{DB: db}

	res, err := r.Resolve(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC), DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Countries)
	assert.Equal(t, 2, res.ZonesMatched, "both zones are at 17 even though neither yields a name")
	assert.Zero(t, res.ZonesSkipped)
}

// TestResolve_Errors covers the two failure modes: an out-of-range target
// hour and a database that enumerates nothing.
func TestResolve_Errors(t *testing.T) {
	t.Run("hour below range", func(t *testing.T) {
		r := &Resolver{DB: newStubDB()}
		_, err := r.Resolve(time.Now(), Options{TargetHour: -1})
		assert.Error(t, err)
	})

	t.Run("hour above range", func(t *testing.T) {
		r := &Resolver{DB: newStubDB()}
		_, err := r.Resolve(time.Now(), Options{TargetHour: 24})
		assert.Error(t, err)
	})

	t.Run("empty database", func(t *testing.T) {
		r := &Resolver{DB: &stubDB{}}
		_, err := r.Resolve(time.Now(), DefaultOptions())
		assert.Error(t, err)
	})
}

// TestResolve_Timestamps verifies the result carries the pass instant in both
// local and UTC readings.
func TestResolve_Timestamps(t *testing.T) {
	r := &Resolver{DB: newStubDB()}
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	res, err := r.Resolve(now, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.ComputedAtUTC.Equal(now))
	assert.True(t, res.ComputedAt.Equal(now), "local reading denotes the same instant")
}
