package history

import (
	"time"

	"exam-bank/internal/models"
)

type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Attempt is the inbound payload for one completed quiz run. Questions and
// answers are positionally paired; nothing checks their lengths, the score
// range, or that the identifier belongs to a registered user.
type Attempt struct {
	UserEmail    string   `json:"user_email"`
	ExamID       uint     `json:"exam_id"`
	ModuleID     *uint    `json:"module_id"`
	CollectionID *uint    `json:"collection_id"`
	Questions    []int    `json:"questions"`
	Answers      []string `json:"answers"`
	Score        float64  `json:"score"`
}

// RecordAttempt inserts the attempt with a server-assigned timestamp and
// returns the stored row.
func (s *Service) RecordAttempt(attempt Attempt) (*models.HistoryEntry, error) {
	entry := &models.HistoryEntry{
		UserEmail:    attempt.UserEmail,
		ExamID:       attempt.ExamID,
		ModuleID:     attempt.ModuleID,
		CollectionID: attempt.CollectionID,
		Questions:    attempt.Questions,
		Answers:      attempt.Answers,
		Score:        attempt.Score,
		Datetime:     s.now(),
	}

	if err := s.repo.CreateEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) GetHistory(userEmail string) ([]models.HistoryEntry, error) {
	return s.repo.GetByUserEmail(userEmail)
}
