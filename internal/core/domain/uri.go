// internal/core/domain/uri.go
package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// MatchKind classifies a URI.
type MatchKind int

const (
	MatchUnknown MatchKind = iota
	MatchCollection
	MatchItem
)

// String returns a readable name for logs.
func (k MatchKind) String() string {
	switch k {
	case MatchCollection:
		return "collection"
	case MatchItem:
		return "item"
	default:
		return "unknown"
	}
}

// Match is the result of resolving a URI. ID is set only for MatchItem.
type Match struct {
	Kind MatchKind
	ID   int64
}

// Resolve classifies uri against the default contract.
func Resolve(uri string) Match {
	return DefaultContract.Resolve(uri)
}

// Resolve classifies uri as the collection, a single item or unknown.
func (c Contract) Resolve(uri string) Match {
	u, err := url.Parse(uri)
	if err != nil {
		return Match{Kind: MatchUnknown}
	}
	if u.Scheme != c.Scheme || u.Host != c.Authority {
		return Match{Kind: MatchUnknown}
	}
	if u.User != nil || u.RawQuery != "" || u.Fragment != "" || u.Opaque != "" {
		return Match{Kind: MatchUnknown}
	}

	segments := strings.Split(strings.Trim(u.EscapedPath(), "/"), "/")
	if len(segments) == 0 || segments[0] != PathInventory {
		return Match{Kind: MatchUnknown}
	}

	switch len(segments) {
	case 1:
		return Match{Kind: MatchCollection}
	case 2:
		id, ok := parseID(segments[1])
		if !ok {
			return Match{Kind: MatchUnknown}
		}
		return Match{Kind: MatchItem, ID: id}
	default:
		return Match{Kind: MatchUnknown}
	}
}

// parseID accepts only plain decimal digits.
func parseID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// NormalizeURI trims trailing slashes so equivalent URIs compare equal.
func NormalizeURI(uri string) string {
	trimmed := strings.TrimRight(uri, "/")
	if trimmed == "" || strings.HasSuffix(trimmed, ":") {
		return uri
	}
	return trimmed
}

// IsAncestorURI reports whether parent is a strict path ancestor of child.
func IsAncestorURI(parent, child string) bool {
	parent = NormalizeURI(parent)
	child = NormalizeURI(child)
	return len(child) > len(parent) && strings.HasPrefix(child, parent+"/")
}
