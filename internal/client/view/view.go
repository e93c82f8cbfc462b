// Package view turns topic lists into output for the user: an HTML fragment
// with every user-supplied field escaped, or a terminal table.
package view

import (
	"io"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
)

// NoTopics replaces the list when there is nothing to show.
const NoTopics = "No topics found. Be the first to create one!"

const (
	ellipsis       = "..."
	dateLayout     = "02.01.2006"
	DefaultPreview = 200
)

type Renderer interface {
	Render(w io.Writer, topics []models.Topic) error
}

// Options shared by the renderers.
type Options struct {
	// Preview is the content budget in runes.
	Preview int
	// Location dates are shown in. Nil means time.Local.
	Location *time.Location
}

func (o Options) preview() int {
	if o.Preview <= 0 {
		return DefaultPreview
	}
	return o.Preview
}

func (o Options) date(t time.Time) string {
	loc := o.Location
	if loc == nil {
		loc = time.Local
	}
	return FormatDate(t.In(loc))
}

// Preview cuts s to limit runes and appends "..." when anything was cut.
func Preview(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit]) + ellipsis
}

// FormatDate renders t as dd.mm.yyyy in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
