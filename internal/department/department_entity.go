package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name       string         `gorm:"size:255;not null;uniqueIndex:uq_department_name"`
	LocationID *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Department) TableName() string {
	return "departments"
}

// Member is a read model over the employees table used by the
// department roster endpoint.
type Member struct {
	ID       uuid.UUID
	FullName string
	Email    string
	JobID    uuid.UUID
}
