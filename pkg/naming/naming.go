// classforge/pkg/naming/naming.go

// Package naming implements the three identifier strategies the bundler
// applies to a normalized class-token sequence: hash, readable, and
// camel-case. Hashing uses zeebo/xxh3, the fast non-cryptographic hash
// already present in the project's dependency graph for exactly this kind
// of content-addressed naming.
package naming

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"
)

// Mode selects a naming strategy.
type Mode string

const (
	Hash      Mode = "hash"
	Readable  Mode = "readable"
	CamelCase Mode = "camel-case"
)

// hashLength is the number of hex characters kept from the xxh3 digest.
const hashLength = 8

// readableCap is the maximum length of a readable/camel-case identifier.
const readableCap = 64

// Normalize sorts tokens into the canonical order the spec requires:
// lexicographic order within each variant-prefix group, and variant-prefix
// groups themselves ordered with the no-prefix group first, then by prefix
// string. Callers pass tokens already split by group; Normalize returns the
// flattened sequence in a new slice and leaves the input slices unchanged.
func Normalize(groupedTokens map[string][]string) []string {
	keys := make([]string, 0, len(groupedTokens))
	for k := range groupedTokens {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == "" {
			return keys[j] != ""
		}
		if keys[j] == "" {
			return false
		}
		return keys[i] < keys[j]
	})

	var out []string
	for _, k := range keys {
		toks := append([]string(nil), groupedTokens[k]...)
		sort.Strings(toks)
		out = append(out, toks...)
	}
	return out
}

// Identifier computes the identifier for the normalized token sequence
// under the given mode.
func Identifier(normalized []string, mode Mode) string {
	switch mode {
	case Readable:
		return readable(normalized)
	case CamelCase:
		return camelCase(normalized)
	default:
		return hash(normalized)
	}
}

func hash(normalized []string) string {
	joined := strings.Join(normalized, " ")
	sum := xxh3.Hash([]byte(joined))
	return fmt.Sprintf("c_%0*x", hashLength, sum)[:2+hashLength]
}

// sanitize replaces any character invalid in an identifier segment with
// '_', matching the readable-mode translation rule.
func sanitize(token string) string {
	var b strings.Builder
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func readable(normalized []string) string {
	parts := make([]string, len(normalized))
	for i, t := range normalized {
		parts[i] = sanitize(t)
	}
	joined := strings.Join(parts, "_")
	if len(joined) > readableCap {
		joined = joined[:readableCap]
	}
	if joined == "" {
		joined = "empty"
	}
	return joined
}

func camelCase(normalized []string) string {
	r := readable(normalized)
	segments := strings.Split(r, "_")
	var b strings.Builder
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if i == 0 || b.Len() == 0 {
			b.WriteString(strings.ToLower(seg))
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(strings.ToLower(seg[1:]))
	}
	out := b.String()
	if out == "" {
		return "empty"
	}
	if len(out) > readableCap {
		out = out[:readableCap]
	}
	return out
}
