package view

import (
	"html/template"
	"io"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
)

var topicsTemplate = template.Must(template.New("topics").Parse(`{{- if not .Topics -}}
<div class="no-topics">
    <p>{{ .Empty }}</p>
</div>
{{- else -}}
{{- range .Topics }}
<div class="topic-card" data-topic-id="{{ .ID }}">
    <div class="topic-header">
        <div>
            <h3 class="topic-title">{{ .Title }}</h3>
            <span class="topic-category">{{ .Category }}</span>
        </div>
        <div class="topic-date">{{ .Date }}</div>
    </div>
    <div class="topic-author">Author: {{ .Author }}</div>
    <div class="topic-content">{{ .Content }}</div>
    <div class="topic-stats">
        <span class="topic-views">{{ .Views }}</span>
        <span class="topic-replies">{{ .Replies }}</span>
    </div>
</div>
{{- end }}
{{- end }}
`))

type topicCard struct {
	ID       int64
	Title    string
	Category string
	Author   string
	Content  string
	Date     string
	Views    int
	Replies  int
}

// HTMLRenderer writes the topic list as markup. html/template escapes every
// field, so user text can never inject elements.
type HTMLRenderer struct {
	opts Options
}

func NewHTMLRenderer(opts Options) *HTMLRenderer {
	return &HTMLRenderer{opts: opts}
}

func (r *HTMLRenderer) Render(w io.Writer, topics []models.Topic) error {
	cards := make([]topicCard, 0, len(topics))
	for _, t := range topics {
		cards = append(cards, topicCard{
			ID:       t.ID,
			Title:    t.Title,
			Category: t.Category,
			Author:   t.Author,
			Content:  Preview(t.Content, r.opts.preview()),
			Date:     r.opts.date(t.CreatedAt),
			Views:    t.Views,
			Replies:  t.Replies,
		})
	}
	return topicsTemplate.Execute(w, struct {
		Topics []topicCard
		Empty  string
	}{Topics: cards, Empty: NoTopics})
}
