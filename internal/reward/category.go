package reward

import (
	"net/url"
	"strings"
	"unicode"
)

// EncodeCategory turns a category label into its URL slug: lowercase, each
// whitespace run replaced by one hyphen, then percent-encoded.
//
// Labels that already contain hyphens do not survive a round trip through
// DecodeCategory; their hyphens come back as spaces.
func EncodeCategory(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	inSpace := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	// No whitespace is left, so QueryEscape never emits '+'.
	return url.QueryEscape(b.String())
}

// DecodeCategory reverses EncodeCategory: percent-decode, lowercase, and turn
// every hyphen into a space. A slug with a malformed escape is used as is.
func DecodeCategory(slug string) string {
	decoded, err := url.PathUnescape(slug)
	if err != nil {
		decoded = slug
	}
	return strings.ReplaceAll(strings.ToLower(decoded), "-", " ")
}

// CategorySet is an insertion-ordered set of decoded category labels.
// The zero value is ready to use.
type CategorySet struct {
	order []string
	seen  map[string]struct{}
}

// NewCategorySet returns a set holding the given decoded labels.
func NewCategorySet(labels ...string) *CategorySet {
	s := &CategorySet{}
	for _, label := range labels {
		s.Add(label)
	}
	return s
}

// AddSlug decodes slug and adds it. It reports whether the set grew.
func (s *CategorySet) AddSlug(slug string) bool {
	return s.Add(DecodeCategory(slug))
}

// Add inserts an already decoded label, keeping first-seen order.
func (s *CategorySet) Add(label string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[label]; ok {
		return false
	}
	s.seen[label] = struct{}{}
	s.order = append(s.order, label)
	return true
}

// Contains reports whether the decoded label is in the set.
func (s *CategorySet) Contains(label string) bool {
	_, ok := s.seen[label]
	return ok
}

// Len is the number of distinct labels.
func (s *CategorySet) Len() int {
	return len(s.order)
}

// Values returns the labels in insertion order, or nil for an empty set.
func (s *CategorySet) Values() []string {
	if len(s.order) == 0 {
		return nil
	}
	return append([]string(nil), s.order...)
}
