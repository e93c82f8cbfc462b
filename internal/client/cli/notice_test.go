package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeBoard_ExpiresAfterTTL(t *testing.T) {
	now := time.Date(2025, 5, 17, 9, 30, 0, 0, time.UTC)
	var b NoticeBoard

	b.Post(Notice{Form: FormLogin, Kind: NoticeError, Text: "bad", ExpiresAt: now.Add(5 * time.Second)})
	b.Post(Notice{Form: FormTopic, Kind: NoticeSuccess, Text: "ok", ExpiresAt: now.Add(3 * time.Second)})

	require.Len(t, b.Active(now), 2)
	require.Len(t, b.Active(now.Add(3*time.Second)), 1, "success notice is gone at its deadline")
	assert.Equal(t, "bad", b.Active(now.Add(4*time.Second))[0].Text)
	assert.Empty(t, b.Active(now.Add(5*time.Second)))
}

func TestNoticeBoard_Latest(t *testing.T) {
	now := time.Date(2025, 5, 17, 9, 30, 0, 0, time.UTC)
	var b NoticeBoard

	_, ok := b.Latest(FormLogin, now)
	assert.False(t, ok)

	b.Post(Notice{Form: FormLogin, Text: "first", ExpiresAt: now.Add(time.Minute)})
	b.Post(Notice{Form: FormRegister, Text: "other", ExpiresAt: now.Add(time.Minute)})
	b.Post(Notice{Form: FormLogin, Text: "second", ExpiresAt: now.Add(time.Minute)})

	n, ok := b.Latest(FormLogin, now)
	require.True(t, ok)
	assert.Equal(t, "second", n.Text)
}

func TestNoticeBoard_UnseenReturnsEachNoticeOnce(t *testing.T) {
	now := time.Date(2025, 5, 17, 9, 30, 0, 0, time.UTC)
	var b NoticeBoard

	b.Post(Notice{Form: FormLogin, Text: "a", ExpiresAt: now.Add(time.Minute)})
	require.Len(t, b.Unseen(now), 1)
	assert.Empty(t, b.Unseen(now))

	b.Post(Notice{Form: FormLogin, Text: "b", ExpiresAt: now.Add(time.Minute)})
	got := b.Unseen(now)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Text)
	assert.Len(t, b.Active(now), 2, "seen notices stay active until they expire")
}
