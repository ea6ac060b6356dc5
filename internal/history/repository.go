package history

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

func (r *Repository) CreateEntry(entry *models.HistoryEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		log.Printf("Error recording attempt: %v", err)
		return err
	}
	return nil
}

func (r *Repository) GetByUserEmail(userEmail string) ([]models.HistoryEntry, error) {
	entries := make([]models.HistoryEntry, 0)
	err := r.db.Where("user_email = ?", userEmail).Find(&entries).Error
	if err != nil {
		log.Printf("Error getting history for %s: %v", userEmail, err)
		return nil, err
	}
	return entries, nil
}
