// internal/daily/daily.go
//
// Deterministic "creature of the day" selection.
//   - The date key is the player's local calendar date: UTC shifted by the
//     client's offset in hours, formatted YYYY-MM-DD.
//   - The index is SHA-256(date key) read as a 256-bit big-endian integer,
//     modulo the catalog size. Every server computes the same index for the
//     same date string.

// Package daily picks the daily target and records daily results.
package daily

import (
	"crypto/sha256"
	"math/big"
	"time"
)

const dateLayout = "2006-01-02"

// DateKey returns the YYYY-MM-DD date for now in a timezone offsetHours from UTC.
func DateKey(now time.Time, offsetHours float64) string {
	shifted := now.UTC().Add(time.Duration(offsetHours * float64(time.Hour)))
	return shifted.Format(dateLayout)
}

// Index maps a date key to a catalog position. Sizes <= 0 yield 0.
func Index(dateKey string, size int) int {
	if size <= 0 {
		return 0
	}
	sum := sha256.Sum256([]byte(dateKey))
	n := new(big.Int).SetBytes(sum[:])
	return int(n.Mod(n, big.NewInt(int64(size))).Int64())
}

// PickOfTheDay is Index(DateKey(now, offsetHours), size).
func PickOfTheDay(now time.Time, offsetHours float64, size int) int {
	return Index(DateKey(now, offsetHours), size)
}

// PreviousDateKey returns the date key one day before dateKey.
func PreviousDateKey(dateKey string) (string, error) {
	t, err := time.Parse(dateLayout, dateKey)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(dateLayout), nil
}
