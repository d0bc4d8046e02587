package valueobjects

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s, collapses every run of non [a-z0-9] characters into
// one hyphen and trims hyphens at both ends. Titles without latin letters or
// digits (e.g. Arabic) slugify to "".
func Slugify(s string) string {
	s = nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// PostSlug derives a post slug from its title and creation time. The
// millisecond suffix keeps slugs unique without a collision-retry loop.
func PostSlug(title string, createdAt time.Time) string {
	suffix := strconv.FormatInt(createdAt.UnixMilli(), 10)
	base := Slugify(title)
	if base == "" {
		return "post-" + suffix
	}
	return base + "-" + suffix
}

// TruncateSlug cuts a slug to at most n bytes without leaving a trailing hyphen.
func TruncateSlug(slug string, n int) string {
	if len(slug) <= n {
		return slug
	}
	return strings.TrimRight(slug[:n], "-")
}
