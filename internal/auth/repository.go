package auth

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

func (r *Repository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	result := r.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// CreateUser inserts the user. The unique index on username is the single
// source of truth for duplicates: a taken name comes back as
// gorm.ErrDuplicatedKey, there is no prior read.
func (r *Repository) CreateUser(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return err
	}
	return nil
}
