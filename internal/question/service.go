package question

import (
	"exam-bank/internal/models"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Filter is the parsed question-selection request. Pointer fields are nil
// when the parameter was absent. An absent Limit means unbounded; an
// explicit 0 selects nothing.
type Filter struct {
	IDs          []int
	CollectionID *int
	ModuleID     *int
	ExamID       *int
	Limit        *int
}

// Select resolves the question set for a filter. Precedence is fixed and
// callers depend on it: explicit id list, then collection, module, exam,
// then the whole bank. The id list ignores Limit and every other parameter.
func (s *Service) Select(f Filter) ([]models.Question, error) {
	switch {
	case len(f.IDs) > 0:
		return s.repo.ByIDs(f.IDs)
	case f.CollectionID != nil:
		return s.repo.RandomByCollection(*f.CollectionID, f.Limit)
	case f.ModuleID != nil:
		return s.repo.RandomByModule(*f.ModuleID, f.Limit)
	case f.ExamID != nil:
		return s.repo.RandomByExam(*f.ExamID, f.Limit)
	default:
		return s.repo.RandomAll(f.Limit)
	}
}

// Count mirrors Select's precedence without the id-list case and returns
// the number of matching association rows, not distinct questions.
func (s *Service) Count(f Filter) (int64, error) {
	switch {
	case f.CollectionID != nil:
		return s.repo.CountByCollection(*f.CollectionID)
	case f.ModuleID != nil:
		return s.repo.CountByModule(*f.ModuleID)
	case f.ExamID != nil:
		return s.repo.CountByExam(*f.ExamID)
	default:
		return s.repo.CountAll()
	}
}
