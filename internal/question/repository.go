package question

import (
	"log"

	"exam-bank/internal/models"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// limited applies the sample bound when one was supplied. An absent bound
// leaves the query unbounded; an explicit 0 selects nothing, the same as
// the store evaluating LIMIT 0.
func limited(tx *gorm.DB, limit *int) *gorm.DB {
	if limit != nil {
		return tx.Limit(*limit)
	}
	return tx
}

// ByIDs returns exactly the questions with the given numbers, unordered.
func (r *Repository) ByIDs(ids []int) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(ids))
	err := r.db.Where("no_question IN ?", ids).Find(&questions).Error
	if err != nil {
		log.Printf("Error getting questions by ids: %v", err)
		return nil, err
	}
	return questions, nil
}

func (r *Repository) RandomByCollection(collectionID int, limit *int) ([]models.Question, error) {
	sub := r.db.Model(&models.CollectionQuestion{}).
		Select("no_question").
		Where("collection_id = ?", collectionID)
	return r.random(r.db.Where("no_question IN (?)", sub), limit)
}

func (r *Repository) RandomByModule(moduleID int, limit *int) ([]models.Question, error) {
	sub := r.db.Model(&models.QuestionAssociation{}).
		Select("no_question").
		Where("module_id = ?", moduleID)
	return r.random(r.db.Where("no_question IN (?)", sub), limit)
}

func (r *Repository) RandomByExam(examID int, limit *int) ([]models.Question, error) {
	sub := r.db.Model(&models.QuestionAssociation{}).
		Select("no_question").
		Where("exam_class_id = ?", examID)
	return r.random(r.db.Where("no_question IN (?)", sub), limit)
}

func (r *Repository) RandomAll(limit *int) ([]models.Question, error) {
	return r.random(r.db, limit)
}

// random executes the shared tail of every sampled query: uniform random
// order at the store, truncated to limit. Not seeded, so repeated calls
// return different subsets.
func (r *Repository) random(tx *gorm.DB, limit *int) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := limited(tx.Order("RANDOM()"), limit).Find(&questions).Error
	if err != nil {
		log.Printf("Error sampling questions: %v", err)
		return nil, err
	}
	return questions, nil
}

// The counts below count join rows, not distinct questions: a question
// associated twice under the same module counts twice.

func (r *Repository) CountByCollection(collectionID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.CollectionQuestion{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountByModule(moduleID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.QuestionAssociation{}).
		Where("module_id = ?", moduleID).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountByExam(examID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.QuestionAssociation{}).
		Where("exam_class_id = ?", examID).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.QuestionAssociation{}).Count(&count).Error
	return count, err
}
