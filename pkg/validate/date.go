package validate

import "time"

// IsISODate reports whether s is a calendar date in YYYY-MM-DD form.
func IsISODate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// IsOnOrBefore compares two ISO calendar dates. The format sorts
// lexicographically, so plain string comparison is exact.
func IsOnOrBefore(date, reference string) bool {
	return date <= reference
}
