// Package tzdb provides the timezone/country database backing the resolver.
//
// Zone enumeration and zone-to-country ownership come from an embedded copy
// of the IANA zone1970.tab table; country display names come from the CLDR
// data in golang.org/x/text. The blank time/tzdata import embeds the zone
// rules themselves, so offset resolution works even on hosts without a
// system zoneinfo directory.
package tzdb

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	_ "time/tzdata"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/tartampluch/go-fiveoclock/internal/config"
)

//go:embed zone1970.tab
var zoneTable []byte

const (
	commentPrefix   = "#"
	columnSeparator = "\t"
	codeSeparator   = ","
	minColumns      = 3

	colCodes = 0
	colZone  = 2
)

// DB implements engine.ZoneDatabase. It is immutable after Load and safe for
// concurrent readers.
type DB struct {
	zones     []string
	countries map[string][]string
	namer     display.Namer
}

// Load parses the embedded zone table. Any failure here is a fatal startup
// condition for the caller; there is no partial-load mode.
func Load() (*DB, error) {
	db := &DB{
		countries: make(map[string][]string),
		namer:     display.English.Regions(),
	}

	scanner := bufio.NewScanner(bytes.NewReader(zoneTable))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fields := strings.Split(line, columnSeparator)
		if len(fields) < minColumns {
			return nil, fmt.Errorf("%s: %q", config.ErrZoneTableFormat, line)
		}

		zone := fields[colZone]
		if _, seen := db.countries[zone]; !seen {
			db.zones = append(db.zones, zone)
		}
		db.countries[zone] = append(db.countries[zone], strings.Split(fields[colCodes], codeSeparator)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrZoneTableLoad, err)
	}
	if len(db.zones) == 0 {
		return nil, errors.New(config.ErrZoneTableEmpty)
	}

	sort.Strings(db.zones)

	slog.Info(config.MsgDatabaseReady,
		config.LogKeyComponent, config.CompTZDB,
		config.LogKeyZones, len(db.zones))
	return db, nil
}

// Zones returns every timezone identifier in the table, sorted ascending.
// Callers must treat the slice as read-only.
func (db *DB) Zones() []string {
	return db.zones
}

// ZoneCountries returns the ISO 3166-1 alpha-2 codes owning the given zone,
// or nil for an unknown identifier.
func (db *DB) ZoneCountries(zone string) []string {
	return db.countries[zone]
}

// CountryName resolves a country code to its English display name.
func (db *DB) CountryName(code string) (string, bool) {
	region, err := language.ParseRegion(code)
	if err != nil {
		return "", false
	}
	name := db.namer.Name(region)
	if name == "" {
		return "", false
	}
	return name, true
}
