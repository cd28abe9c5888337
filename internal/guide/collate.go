package guide

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TitleCollator orders channel titles using the collation rules of a language.
// A collator keeps internal buffers, so one instance must not be shared across goroutines.
type TitleCollator struct {
	tag      language.Tag
	collator *collate.Collator
}

// NewTitleCollator returns a collator for the BCP 47 tag lang, falling back to English
func NewTitleCollator(lang string) *TitleCollator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &TitleCollator{
		tag:      tag,
		collator: collate.New(tag),
	}
}

// Language returns the tag the collator was built for
func (c *TitleCollator) Language() language.Tag {
	return c.tag
}

// Compare returns -1, 0 or 1 as a sorts before, equal to, or after b
func (c *TitleCollator) Compare(a, b string) int {
	return c.collator.CompareString(a, b)
}
