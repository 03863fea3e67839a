package org

import (
	"time"

	"github.com/google/uuid"
)

type Region struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:120;not null;uniqueIndex:uq_region_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Region) TableName() string {
	return "regions"
}

type Country struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:120;not null"`
	Code      string    `gorm:"size:2;not null;uniqueIndex:uq_country_code"`
	RegionID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Country) TableName() string {
	return "countries"
}

type Location struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Street     string    `gorm:"size:255"`
	City       string    `gorm:"size:120;not null"`
	PostalCode string    `gorm:"size:20"`
	CountryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Location) TableName() string {
	return "locations"
}
