package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.StrictPolicy()

// Text strips every tag from input and trims it. Entities produced by the
// policy are decoded again so plain "&" survives a round trip.
func Text(input string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(input)))
}

// OptionalText is Text for nullable fields; blank results become nil.
func OptionalText(input *string) *string {
	if input == nil {
		return nil
	}

	s := Text(*input)
	if s == "" {
		return nil
	}

	return &s
}

// Tags sanitizes tags, drops empty ones and duplicates, keeping first-seen order.
func Tags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, t := range tags {
		t = Text(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}

// SplitTags parses a comma separated form value.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	return Tags(strings.Split(raw, ","))
}
