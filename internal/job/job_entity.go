package job

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Job struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Title     string              `gorm:"size:255;not null;uniqueIndex:uq_job_title"`
	MinSalary decimal.NullDecimal `gorm:"column:min_salary;type:decimal(12,2)"`
	MaxSalary decimal.NullDecimal `gorm:"column:max_salary;type:decimal(12,2)"`
	CreatedAt time.Time           `gorm:"autoCreateTime"`
	UpdatedAt time.Time           `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt      `gorm:"index"`
}

func (Job) TableName() string {
	return "jobs"
}
