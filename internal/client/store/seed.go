package store

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
)

const (
	welcomeTitle    = "Welcome to the HydroHelper forum!"
	welcomeCategory = "General questions"
	welcomeAuthor   = "Administrator"
	welcomeContent  = "This is the official forum of the HydroHelper community. " +
		"Here you can discuss everything related to hydroponics, share your experience and ask questions."
	welcomeViews = 42
)

func welcomeTopic(at time.Time) models.Topic {
	return models.Topic{
		ID:        1,
		Title:     welcomeTitle,
		Category:  welcomeCategory,
		Content:   welcomeContent,
		Author:    welcomeAuthor,
		CreatedAt: at,
		Views:     welcomeViews,
		Replies:   0,
	}
}

func (s *Store) seed(ctx context.Context) error {
	s.topics = []models.Topic{welcomeTopic(s.timestamp())}
	if err := s.save(ctx, KeyTopics, s.topics); err != nil {
		s.topics = []models.Topic{}
		return err
	}
	s.log.Info(ctx, "seeded welcome topic")
	return nil
}
