package org

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=org_repo.go -destination=mock/org_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateRegion(ctx context.Context, region *Region) error
	FindAllRegions(ctx context.Context) ([]Region, error)
	FindRegionByID(ctx context.Context, id string) (*Region, error)
	DeleteRegion(ctx context.Context, id string) error

	CreateCountry(ctx context.Context, country *Country) error
	FindAllCountries(ctx context.Context) ([]Country, error)
	FindCountryByID(ctx context.Context, id string) (*Country, error)
	DeleteCountry(ctx context.Context, id string) error

	CreateLocation(ctx context.Context, loc *Location) error
	FindAllLocations(ctx context.Context) ([]Location, error)
	FindLocationByID(ctx context.Context, id string) (*Location, error)
	DeleteLocation(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) CreateRegion(ctx context.Context, region *Region) error {
	return r.db.WithContext(ctx).Create(region).Error
}

func (r *repository) FindAllRegions(ctx context.Context) ([]Region, error) {
	var regions []Region
	err := r.db.WithContext(ctx).Order("name ASC").Find(&regions).Error
	return regions, err
}

func (r *repository) FindRegionByID(ctx context.Context, id string) (*Region, error) {
	var region Region
	err := r.db.WithContext(ctx).First(&region, "id = ?", id).Error
	return &region, err
}

func (r *repository) DeleteRegion(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Region{}, "id = ?", id).Error
}

func (r *repository) CreateCountry(ctx context.Context, country *Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *repository) FindAllCountries(ctx context.Context) ([]Country, error) {
	var countries []Country
	err := r.db.WithContext(ctx).Order("name ASC").Find(&countries).Error
	return countries, err
}

func (r *repository) FindCountryByID(ctx context.Context, id string) (*Country, error) {
	var country Country
	err := r.db.WithContext(ctx).First(&country, "id = ?", id).Error
	return &country, err
}

func (r *repository) DeleteCountry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Country{}, "id = ?", id).Error
}

func (r *repository) CreateLocation(ctx context.Context, loc *Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *repository) FindAllLocations(ctx context.Context) ([]Location, error) {
	var locs []Location
	err := r.db.WithContext(ctx).Order("city ASC").Find(&locs).Error
	return locs, err
}

func (r *repository) FindLocationByID(ctx context.Context, id string) (*Location, error) {
	var loc Location
	err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error
	return &loc, err
}

func (r *repository) DeleteLocation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Location{}, "id = ?", id).Error
}
