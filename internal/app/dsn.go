package app

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespace = regexp.MustCompile(`\s+`)
	// Admin emails and names reach the store as literals only in ad-hoc
	// queries; keep them out of span attributes either way.
	queryStringLiteral = regexp.MustCompile(`'(?:[^']|'')*'`)
)

// normalizeDBURL opts postgres connections out of binary prepared results,
// which transaction-mode poolers reject. An explicit setting in the URL wins.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := parsed.Query()
	if query.Has("disable_prepared_binary_result") {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// dbNameFromURL extracts the database name for span attributes from a
// postgres URL, a libpq keyword string or a sqlite file URI.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if parsed.Scheme == "file" {
			file := parsed.Opaque
			if file == "" {
				file = parsed.Path
			}
			return strings.TrimSuffix(path.Base(file), path.Ext(file))
		}
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(raw) {
		if key, value, ok := strings.Cut(field, "="); ok && key == "dbname" {
			if name := strings.Trim(value, `"'`); name != "" {
				return name
			}
		}
	}
	return ""
}

// formatDBQueryForTrace collapses whitespace, masks string literals and caps
// the length of a statement before it is attached to a span.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}

	query = queryWhitespace.ReplaceAllString(query, " ")
	query = queryStringLiteral.ReplaceAllString(query, "'?'")
	if len(query) > maxTracedQueryLength {
		query = query[:maxTracedQueryLength] + "..."
	}
	return query
}
