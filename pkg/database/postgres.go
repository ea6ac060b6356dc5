package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	// URL is a full connection string (POSTGRES_URL). When set it takes
	// precedence over the discrete fields.
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func (c *Config) dsn() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host,
		c.User,
		c.Password,
		c.DBName,
		c.Port,
	)
}

func NewPostgresDB(config *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.dsn()), &gorm.Config{
		// Unique violations must surface as gorm.ErrDuplicatedKey; the
		// register flow relies on it.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}
