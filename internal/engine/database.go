package engine

// ZoneDatabase is the read-only timezone/country lookup the Resolver runs
// against. Implementations are expected to be fully loaded at startup and
// static for the lifetime of the process; a load failure is a fatal startup
// error, never a per-call one.
type ZoneDatabase interface {
	// Zones enumerates every known timezone identifier (region/city form).
	Zones() []string

	// ZoneCountries returns the ISO 3166-1 alpha-2 codes of the countries
	// that share the given zone. An empty result means the identifier is an
	// alias or deprecated entry and owns no country.
	ZoneCountries(zone string) []string

	// CountryName maps a country code to its display name.
	// The second return value reports whether the code is known.
	CountryName(code string) (string, bool)
}
