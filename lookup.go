package localize

// Resource key suffixes from the DotNetNuke resource file convention. Tables
// commonly store "FIELD.TEXT" or "FIELD.ERROR" keys; lookups accept the bare
// field name and probe the suffixed forms.
const (
	suffixText  = ".TEXT"
	suffixError = ".ERROR"
)

// Get resolves key to its localized string. Unresolved keys come back as the
// key wrapped in square brackets, in its original case, so missing
// translations stay visible in rendered output instead of failing.
func (l Localization) Get(key string) string {
	return l.GetOr(key, "["+key+"]")
}

// GetOr resolves key to its localized string, or returns fallback verbatim
// when the key cannot be resolved. The uppercased key is tried first, then
// with the ".TEXT" suffix, then with ".ERROR"; a direct match always wins
// over a suffixed one.
func (l Localization) GetOr(key, fallback string) string {
	if value, ok := l.lookup(key); ok {
		return value
	}
	return fallback
}

// Has reports whether key resolves to an entry, through the same candidates
// GetOr probes.
func (l Localization) Has(key string) bool {
	_, ok := l.lookup(key)
	return ok
}

func (l Localization) lookup(key string) (string, bool) {
	folded := upperKey(key)
	for _, candidate := range []string{folded, folded + suffixText, folded + suffixError} {
		if value, ok := l.entries[candidate]; ok {
			return value, true
		}
	}
	return "", false
}
