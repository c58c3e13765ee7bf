package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/tartampluch/go-fiveoclock/internal/config"
)

// Options controls a single resolution pass.
type Options struct {
	// TargetHour is the local wall-clock hour (0-23) a zone must be in.
	TargetHour int

	// ExactHour additionally requires the local minute to be zero,
	// narrowing the window from the full hour to the top of it.
	ExactHour bool
}

// DefaultOptions returns the standard 5 PM window.
func DefaultOptions() Options {
	return Options{TargetHour: config.DefaultTargetHour}
}

// Result is the output of one resolution pass. Countries is unique,
// uppercased and sorted ascending; it is recomputed from scratch on every
// pass and never derived from a previous Result.
type Result struct {
	Countries     []string
	ComputedAt    time.Time // instant of computation in the host's local zone
	ComputedAtUTC time.Time
	ZonesMatched  int // zones whose local hour hit the target
	ZonesSkipped  int // zones that could not be resolved to a local time
}

// Resolver maps an instant to the set of countries currently experiencing
// the target hour. It performs no I/O beyond the injected database and no
// scheduling; given the same instant, options, and database state it always
// produces the same Result.
type Resolver struct {
	DB ZoneDatabase
}

// Resolve walks every known timezone identifier, keeps the ones whose local
// wall-clock hour at 'now' equals the target hour, and maps them to country
// display names. Each zone's offset is resolved individually at 'now', so
// seasonal rules in force at that instant are respected. Zones that cannot
// be resolved are skipped with a warning; zones without a country mapping
// and codes without a display name are skipped silently.
func (r *Resolver) Resolve(now time.Time, opts Options) (Result, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	if opts.TargetHour < config.MinTargetHour || opts.TargetHour > config.MaxTargetHour {
		return Result{}, fmt.Errorf("%s: %d", config.ErrHourRange, opts.TargetHour)
	}

	zones := r.DB.Zones()
	if len(zones) == 0 {
		return Result{}, errors.New(config.ErrNoZones)
	}

	res := Result{
		ComputedAt:    now.Local(),
		ComputedAtUTC: now.UTC(),
	}

	names := make(map[string]struct{})
	for _, zone := range zones {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			// Corrupt or unsupported entry: recover locally, keep the pass going.
			res.ZonesSkipped++
			log.Warn(config.MsgZoneSkipped,
				config.LogKeyZone, zone,
				config.LogKeyError, err)
			continue
		}

		local := now.In(loc)
		if local.Hour() != opts.TargetHour {
			continue
		}
		if opts.ExactHour && local.Minute() != 0 {
			continue
		}
		res.ZonesMatched++

		for _, code := range r.DB.ZoneCountries(zone) {
			name, ok := r.DB.CountryName(code)
			if !ok {
				continue
			}
			names[strings.ToUpper(name)] = struct{}{}
		}
	}

	res.Countries = make([]string, 0, len(names))
	for name := range names {
		res.Countries = append(res.Countries, name)
	}
	sort.Strings(res.Countries)

	log.Debug(config.MsgResolveDone,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyZones, len(zones)),
			slog.Int(config.LogKeyMatched, res.ZonesMatched),
			slog.Int(config.LogKeySkipped, res.ZonesSkipped),
			slog.Int(config.LogKeyCountries, len(res.Countries)),
		),
		config.LogKeyHour, opts.TargetHour,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)

	return res, nil
}
