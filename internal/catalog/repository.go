package catalog

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

func (r *Repository) ListExamClasses() ([]models.ExamClass, error) {
	exams := make([]models.ExamClass, 0)
	if err := r.db.Find(&exams).Error; err != nil {
		log.Printf("Error listing exam classes: %v", err)
		return nil, err
	}
	return exams, nil
}

func (r *Repository) ListModules() ([]models.Module, error) {
	modules := make([]models.Module, 0)
	if err := r.db.Find(&modules).Error; err != nil {
		log.Printf("Error listing modules: %v", err)
		return nil, err
	}
	return modules, nil
}

func (r *Repository) ListCollections() ([]models.Collection, error) {
	collections := make([]models.Collection, 0)
	if err := r.db.Find(&collections).Error; err != nil {
		log.Printf("Error listing collections: %v", err)
		return nil, err
	}
	return collections, nil
}
