package cli

import (
	"time"
)

type NoticeKind string

const (
	NoticeError   NoticeKind = "error"
	NoticeSuccess NoticeKind = "success"
)

// Form names that notices attach to.
const (
	FormLogin    = "login"
	FormRegister = "register"
	FormTopic    = "topic"
	FormView     = "view"
	FormList     = "list"
)

// Notice is a transient inline message. It disappears once ExpiresAt has
// passed.
type Notice struct {
	Form      string
	Kind      NoticeKind
	Text      string
	ExpiresAt time.Time

	seen bool
}

type NoticeBoard struct {
	items []Notice
}

func (b *NoticeBoard) Post(n Notice) {
	b.items = append(b.items, n)
}

// Active drops expired notices and returns the rest, oldest first.
func (b *NoticeBoard) Active(now time.Time) []Notice {
	b.prune(now)
	out := make([]Notice, len(b.items))
	copy(out, b.items)
	return out
}

// Latest returns the newest active notice for form.
func (b *NoticeBoard) Latest(form string, now time.Time) (Notice, bool) {
	b.prune(now)
	for i := len(b.items) - 1; i >= 0; i-- {
		if b.items[i].Form == form {
			return b.items[i], true
		}
	}
	return Notice{}, false
}

// Unseen returns active notices not returned by a previous Unseen call.
// They stay active until they expire.
func (b *NoticeBoard) Unseen(now time.Time) []Notice {
	b.prune(now)
	var out []Notice
	for i := range b.items {
		if !b.items[i].seen {
			b.items[i].seen = true
			out = append(out, b.items[i])
		}
	}
	return out
}

func (b *NoticeBoard) prune(now time.Time) {
	kept := b.items[:0]
	for _, n := range b.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	b.items = kept
}
