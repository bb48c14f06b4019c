package shared

const (
	FILTER_ALL = "all"

	// Prefix for every saved media filename so downloads sort together.
	FILENAME_PREFIX = "slime-this"

	STREAM_NOTICES = "notices"

	PREF_THEME       = "theme"
	PREF_TYPE_FILTER = "type_filter"

	DEFAULT_THEME = "ultra-glass"

	USER_AGENT = "Bangerd/1.0 <github.com/slime-this/bangerd>"
)
