package constants

const (
	// DefaultBaseURL is the site prefix used when building shareable trip
	// links. There is no backend behind it; a link only resolves against
	// whatever is already in the local store.
	DefaultBaseURL = "https://tripvibe.app/"

	// TripQueryParam is the query parameter carrying the active trip id in
	// shareable links.
	TripQueryParam = "trip"

	// StorageVersion is the current on-disk storage schema version.
	StorageVersion = 1
)
