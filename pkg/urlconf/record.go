package urlconf

import "fmt"

// Category names used in errors and by Parse
const (
	CategoryDatabase = "database"
	CategoryCache    = "cache"
	CategoryEmail    = "email"
	CategoryStorage  = "storage"
)

// Record is a decoded backend configuration
type Record interface {
	// Fields returns the settings dictionary with exactly the keys the
	// backend expects
	Fields() map[string]any
}

// Categories lists the categories Parse accepts
func Categories() []string {
	return []string{CategoryDatabase, CategoryCache, CategoryEmail, CategoryStorage}
}

// Parse decodes s with the decoder for category. The returned Record is nil
// whenever err is not.
func Parse(category, s string, opts ...StorageOption) (Record, error) {
	switch category {
	case CategoryDatabase:
		d, err := ParseDatabase(s)
		if err != nil {
			return nil, err
		}
		return d, nil
	case CategoryCache:
		c, err := ParseCache(s)
		if err != nil {
			return nil, err
		}
		return c, nil
	case CategoryEmail:
		e, err := ParseEmail(s)
		if err != nil {
			return nil, err
		}
		return e, nil
	case CategoryStorage:
		st, err := ParseStorage(s, opts...)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown category %q", category)
	}
}
