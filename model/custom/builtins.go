package custom

import (
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/outpostdev/typeforge/pkg/value"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Scope produces the opaque construct-tree root value once per call
// site. It is never itself a mutation candidate: swapping out the root
// of the tree the whole model is rooted in is meaningless.
type Scope struct{}

func (Scope) Name() string { return "scope" }

func (Scope) Minimal(ptr value.DistPtr, z value.Zipper) (value.Value, error) {
	return value.NewScope(ptr), nil
}

func (Scope) Mutate(v value.Value, z value.Zipper, propose Proposer) {}

// ConstructID produces a fresh short identifier per call, so that two
// sibling calls sharing the same DistPtr (the common "scope, id"
// constructor shape repeated across an array) never collide.
type ConstructID struct {
	counter atomic.Uint64
}

func (c *ConstructID) Name() string { return "constructId" }

func (c *ConstructID) Minimal(ptr value.DistPtr, z value.Zipper) (value.Value, error) {
	n := c.counter.Add(1)
	return value.NewString(ptr, fmt.Sprintf("Id%d", n)), nil
}

func (c *ConstructID) Mutate(v value.Value, z value.Zipper, propose Proposer) {
	ptr := value.DistPtr{}
	if v.Ptr != nil {
		ptr = *v.Ptr
	}
	n := c.counter.Add(1)
	propose.Propose(value.NewString(ptr, fmt.Sprintf("Id%d", n)))
}

// Slug produces DNS-safe tokens over slugAlphabet (lowercase letters,
// digits, hyphens). Minimal always returns "abc"; Mutate's proposals keep
// to the same alphabet but are not held to a length range or a leading
// letter.
type Slug struct{}

func (Slug) Name() string { return "slug" }

func (Slug) Minimal(ptr value.DistPtr, z value.Zipper) (value.Value, error) {
	return value.NewString(ptr, "abc"), nil
}

// Mutate proposes a handful of nearby slugs: a lengthened, shortened,
// and rotated variant of the current token, each sanitized back into the
// DNS-safe alphabet so a mutation that started from an arbitrary string
// (not necessarily one this Source produced) still yields a token over
// slugAlphabet.
func (s Slug) Mutate(v value.Value, z value.Zipper, propose Proposer) {
	ptr := value.DistPtr{}
	if v.Ptr != nil {
		ptr = *v.Ptr
	}
	base := sanitizeSlug(v.Str)
	if base == "" {
		base = "abc"
	}
	candidates := []string{
		base + "x",
		trimSlug(base),
		rotateSlug(base),
	}
	for _, c := range candidates {
		if c == "" || c == v.Str {
			continue
		}
		propose.Propose(value.NewString(ptr, c))
	}
}

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-"

// sanitizeSlug ASCII-folds s (stripping accents via Unicode
// normalization) and keeps only characters from slugAlphabet, so a
// mutation seeded from an arbitrary prior string still yields a legal
// token instead of an error.
func sanitizeSlug(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		s,
	)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if strings.ContainsRune(slugAlphabet, r) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

func trimSlug(s string) string {
	if len(s) <= 3 {
		return s
	}
	return s[:len(s)-1]
}

func rotateSlug(s string) string {
	if len(s) < 2 {
		return s
	}
	return s[1:] + s[:1]
}
