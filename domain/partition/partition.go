// Package partition defines the date key that scopes one run's bronze and
// silver artifacts to a single directory pair.
package partition

import (
	"fmt"
	"path/filepath"
	"time"
)

// Key is a calendar-date partition key in YYYY-MM-DD form.
type Key string

const keyLayout = "2006-01-02"

// MarkerName is the zero-byte completion marker written next to each
// partition's data artifact. Marker present means the sibling artifact is
// complete and stable.
const MarkerName = "_SUCCESS"

// ParseKey validates a YYYY-MM-DD string as a partition key.
func ParseKey(s string) (Key, error) {
	if _, err := time.Parse(keyLayout, s); err != nil {
		return "", fmt.Errorf("invalid partition key %q (want YYYY-MM-DD): %w", s, err)
	}
	return Key(s), nil
}

// KeyForDate derives the partition key for a calendar date.
func KeyForDate(t time.Time) Key {
	return Key(t.Format(keyLayout))
}

func (k Key) String() string { return string(k) }

// Dir returns the partition directory for k under base, following the
// ingest_date={key} layout shared by the bronze and silver trees.
func (k Key) Dir(base string) string {
	return filepath.Join(base, fmt.Sprintf("ingest_date=%s", k))
}

// MarkerPath returns the completion-marker path inside k's directory
// under base.
func (k Key) MarkerPath(base string) string {
	return filepath.Join(k.Dir(base), MarkerName)
}
