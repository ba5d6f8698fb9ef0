package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type MySQLStore struct {
	db *gorm.DB
}

func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	if err := db.AutoMigrate(&Verification{}); err != nil {
		return nil, fmt.Errorf("failed to migrate verification schema: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Save(ctx context.Context, v *Verification) (*Verification, error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}

	if err := s.db.WithContext(ctx).Create(v).Error; err != nil {
		return nil, fmt.Errorf("failed to save verification: %w", err)
	}
	return v, nil
}
