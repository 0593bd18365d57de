package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Generation is one persisted generation run. The full response payload is
// stored as jsonb so the history endpoints can return it unchanged.
type Generation struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	FocusKeyword  string         `gorm:"type:varchar(200);not null;index"`
	PageType      string         `gorm:"type:varchar(50);index"`
	Mode          string         `gorm:"type:varchar(50);not null;index"`
	PromptVersion string         `gorm:"type:varchar(20)"`
	Model         string         `gorm:"type:varchar(100)"`
	Content       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
