package database

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/questlog/internal/progress"
	"github.com/example/questlog/pkg/models"
)

// Document keys, one per independently persisted piece of client state
const (
	KeyProgress    = "user_progress"
	KeyDailyQuests = "daily_quests"
	KeyLastReset   = "achievement_reset"
)

// dailyQuests is today's quest list together with the day it was assigned
type dailyQuests struct {
	Day    string         `json:"day"`
	Quests []models.Quest `json:"quests"`
}

type lastReset struct {
	At time.Time `json:"at"`
}

// Store keeps the client's three documents: the progress record, the quest
// list of the day and the timestamp of the last periodic reset.
type Store struct {
	docs *DocumentRepository
}

// NewStore creates a store on top of an open database
func NewStore(db *sqlx.DB) *Store {
	return &Store{docs: NewDocumentRepository(db)}
}

// LoadProgress returns the stored progress record, or the default record
// when none was saved yet
func (s *Store) LoadProgress(ctx context.Context) (models.UserProgress, error) {
	var p models.UserProgress
	found, err := s.docs.Get(ctx, KeyProgress, &p)
	if err != nil {
		return progress.DefaultProgress(), err
	}
	if !found {
		return progress.DefaultProgress(), nil
	}
	return progress.Normalize(p), nil
}

// SaveProgress replaces the stored progress record
func (s *Store) SaveProgress(ctx context.Context, p models.UserProgress) error {
	return s.docs.Put(ctx, KeyProgress, p)
}

// LoadQuests returns the quest list assigned on day, or nil if the stored
// list belongs to another day or none exists
func (s *Store) LoadQuests(ctx context.Context, day string) ([]models.Quest, error) {
	var doc dailyQuests
	found, err := s.docs.Get(ctx, KeyDailyQuests, &doc)
	if err != nil || !found || doc.Day != day {
		return nil, err
	}
	return doc.Quests, nil
}

// SaveQuests replaces the stored quest list and stamps it with day
func (s *Store) SaveQuests(ctx context.Context, day string, quests []models.Quest) error {
	return s.docs.Put(ctx, KeyDailyQuests, dailyQuests{Day: day, Quests: quests})
}

// Restore writes an imported backup in one transaction. A nil p leaves the
// progress record alone, and a nil quests slice leaves the quest list alone.
func (s *Store) Restore(ctx context.Context, p *models.UserProgress, day string, quests []models.Quest) error {
	docs := make(map[string]any, 2)
	if p != nil {
		docs[KeyProgress] = *p
	}
	if quests != nil {
		docs[KeyDailyQuests] = dailyQuests{Day: day, Quests: quests}
	}
	if len(docs) == 0 {
		return nil
	}
	return s.docs.PutAll(ctx, docs)
}

// LastReset returns the time of the last periodic reset. ok is false when
// no baseline was recorded yet.
func (s *Store) LastReset(ctx context.Context) (at time.Time, ok bool, err error) {
	var doc lastReset
	found, err := s.docs.Get(ctx, KeyLastReset, &doc)
	if err != nil || !found {
		return time.Time{}, false, err
	}
	return doc.At, true, nil
}

// SetLastReset records the time of a periodic reset
func (s *Store) SetLastReset(ctx context.Context, at time.Time) error {
	return s.docs.Put(ctx, KeyLastReset, lastReset{At: at})
}
