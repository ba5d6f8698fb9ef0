package store

import (
	"context"
	"time"

	"github.com/verificabr/verifica/internal/core/model"
)

// Verification is the persisted record of one verdict. Immutable once
// written; there is no update or delete path.
type Verification struct {
	ID             string               `gorm:"primaryKey;size:36" json:"id"`
	Content        string               `gorm:"type:text" json:"content"`
	URL            string               `gorm:"size:2048" json:"url"`
	Classification model.Classification `gorm:"size:16" json:"classification"`
	Score          int                  `json:"score"`
	Explanation    string               `gorm:"type:text" json:"explanation"`
	Criteria       []model.Criterion    `gorm:"serializer:json" json:"criteria"`
	Sources        []model.Source       `gorm:"serializer:json" json:"sources"`
	ImageURL       string               `gorm:"size:2048" json:"image_url"`
	CreatedAt      time.Time            `json:"created_at"`
}

func (Verification) TableName() string {
	return "news_verifications"
}

type Store interface {
	Save(ctx context.Context, v *Verification) (*Verification, error)
}
