package view

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableRenderer prints topics as a terminal table.
type TableRenderer struct {
	opts Options
}

func NewTableRenderer(opts Options) *TableRenderer {
	return &TableRenderer{opts: opts}
}

func (r *TableRenderer) Render(w io.Writer, topics []models.Topic) error {
	if len(topics) == 0 {
		_, err := fmt.Fprintln(w, NoTopics)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Category", "Author", "Date", "Views", "Replies", "Content"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Views", Align: text.AlignRight},
		{Name: "Replies", Align: text.AlignRight},
		{Name: "Content", WidthMax: 60},
	})

	for _, topic := range topics {
		t.AppendRow(table.Row{
			topic.ID,
			topic.Title,
			topic.Category,
			topic.Author,
			r.opts.date(topic.CreatedAt),
			topic.Views,
			topic.Replies,
			Preview(topic.Content, r.opts.preview()),
		})
	}
	t.Render()
	return nil
}

// RenderTopic prints a single topic in full, as shown by the "view" command.
func RenderTopic(w io.Writer, topic models.Topic, opts Options) error {
	_, err := fmt.Fprintf(w, "%s\n[%s] by %s, %s, views: %d, replies: %d\n\n%s\n",
		topic.Title, topic.Category, topic.Author, opts.date(topic.CreatedAt),
		topic.Views, topic.Replies, topic.Content)
	return err
}
