package store

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
)

// CreateTopic stores a new topic in front of all existing ones. Field
// validation is the caller's job.
func (s *Store) CreateTopic(ctx context.Context, in models.NewTopic) (models.Topic, error) {
	var last int64
	for _, t := range s.topics {
		last = max(last, t.ID)
	}

	topic := models.Topic{
		ID:        s.nextID(last),
		Title:     in.Title,
		Category:  in.Category,
		Content:   in.Content,
		Author:    in.Author,
		CreatedAt: s.timestamp(),
	}

	prev := s.topics
	s.topics = append([]models.Topic{topic}, prev...)
	if err := s.save(ctx, KeyTopics, s.topics); err != nil {
		s.topics = prev
		return models.Topic{}, err
	}

	s.log.Info(ctx, "topic created", "topic_id", topic.ID, "category", topic.Category, "author", topic.Author)
	return topic, nil
}

// Topics returns a copy of the topics, newest first. A non-empty category
// keeps only exact matches. The result is never nil.
func (s *Store) Topics(category string) []models.Topic {
	out := make([]models.Topic, 0, len(s.topics))
	for _, t := range s.topics {
		if category == "" || t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) Topic(id int64) (models.Topic, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Topic{}, false
	}
	return s.topics[i], true
}

// Categories lists the distinct categories in first-seen (newest-first)
// order.
func (s *Store) Categories() []string {
	var out []string
	for _, t := range s.topics {
		if !slices.Contains(out, t.Category) {
			out = append(out, t.Category)
		}
	}
	return out
}

// IncrementViews adds one view to the topic. Unknown ids are ignored.
func (s *Store) IncrementViews(ctx context.Context, id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	prev := s.topics
	s.topics = slices.Clone(prev)
	s.topics[i].Views++
	if err := s.save(ctx, KeyTopics, s.topics); err != nil {
		s.topics = prev
		return err
	}
	return nil
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.topics, func(t models.Topic) bool { return t.ID == id })
}
