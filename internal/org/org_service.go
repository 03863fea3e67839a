package org

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	orgerrors "go-hrpay/internal/org/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=org_service.go -destination=mock/org_service_mock.go -package=mock
type Service interface {
	CreateRegion(ctx context.Context, req CreateRegionRequest) (RegionResponse, error)
	GetRegions(ctx context.Context) ([]RegionResponse, error)
	DeleteRegion(ctx context.Context, id string) error

	CreateCountry(ctx context.Context, req CreateCountryRequest) (CountryResponse, error)
	GetCountries(ctx context.Context) ([]CountryResponse, error)
	DeleteCountry(ctx context.Context, id string) error

	CreateLocation(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	GetLocations(ctx context.Context) ([]LocationResponse, error)
	DeleteLocation(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) CreateRegion(ctx context.Context, req CreateRegionRequest) (RegionResponse, error) {
	region := &Region{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if err := s.repo.CreateRegion(ctx, region); err != nil {
		return RegionResponse{}, mapRepositoryError(err)
	}
	return mapRegion(*region), nil
}

func (s *service) GetRegions(ctx context.Context) ([]RegionResponse, error) {
	regions, err := s.repo.FindAllRegions(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	res := make([]RegionResponse, len(regions))
	for i, r := range regions {
		res[i] = mapRegion(r)
	}
	return res, nil
}

func (s *service) DeleteRegion(ctx context.Context, id string) error {
	if _, err := s.repo.FindRegionByID(ctx, id); err != nil {
		return mapNotFound(err, orgerrors.ErrRegionNotFound)
	}
	return mapRepositoryError(s.repo.DeleteRegion(ctx, id))
}

func (s *service) CreateCountry(ctx context.Context, req CreateCountryRequest) (CountryResponse, error) {
	if _, err := s.repo.FindRegionByID(ctx, req.RegionID); err != nil {
		return CountryResponse{}, mapNotFound(err, orgerrors.ErrRegionNotFound)
	}

	country := &Country{
		ID:       uuid.New(),
		Name:     req.Name,
		Code:     strings.ToUpper(req.Code),
		RegionID: uuid.MustParse(req.RegionID),
	}
	if err := s.repo.CreateCountry(ctx, country); err != nil {
		return CountryResponse{}, mapRepositoryError(err)
	}
	return mapCountry(*country), nil
}

func (s *service) GetCountries(ctx context.Context) ([]CountryResponse, error) {
	countries, err := s.repo.FindAllCountries(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	res := make([]CountryResponse, len(countries))
	for i, c := range countries {
		res[i] = mapCountry(c)
	}
	return res, nil
}

func (s *service) DeleteCountry(ctx context.Context, id string) error {
	if _, err := s.repo.FindCountryByID(ctx, id); err != nil {
		return mapNotFound(err, orgerrors.ErrCountryNotFound)
	}
	return mapRepositoryError(s.repo.DeleteCountry(ctx, id))
}

func (s *service) CreateLocation(ctx context.Context, req CreateLocationRequest) (LocationResponse, error) {
	if _, err := s.repo.FindCountryByID(ctx, req.CountryID); err != nil {
		return LocationResponse{}, mapNotFound(err, orgerrors.ErrCountryNotFound)
	}

	loc := &Location{
		ID:         uuid.New(),
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		CountryID:  uuid.MustParse(req.CountryID),
	}
	if err := s.repo.CreateLocation(ctx, loc); err != nil {
		return LocationResponse{}, mapRepositoryError(err)
	}
	return mapLocation(*loc), nil
}

func (s *service) GetLocations(ctx context.Context) ([]LocationResponse, error) {
	locs, err := s.repo.FindAllLocations(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	res := make([]LocationResponse, len(locs))
	for i, l := range locs {
		res[i] = mapLocation(l)
	}
	return res, nil
}

func (s *service) DeleteLocation(ctx context.Context, id string) error {
	if _, err := s.repo.FindLocationByID(ctx, id); err != nil {
		return mapNotFound(err, orgerrors.ErrLocationNotFound)
	}
	return mapRepositoryError(s.repo.DeleteLocation(ctx, id))
}

func mapNotFound(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return mapRepositoryError(err)
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_region_name":
			return orgerrors.ErrRegionAlreadyExists
		case "uq_country_code":
			return orgerrors.ErrCountryAlreadyExists
		}
	}

	return err
}

func mapRegion(r Region) RegionResponse {
	return RegionResponse{ID: r.ID.String(), Name: r.Name}
}

func mapCountry(c Country) CountryResponse {
	return CountryResponse{
		ID:       c.ID.String(),
		Name:     c.Name,
		Code:     c.Code,
		RegionID: c.RegionID.String(),
	}
}

func mapLocation(l Location) LocationResponse {
	return LocationResponse{
		ID:         l.ID.String(),
		Street:     l.Street,
		City:       l.City,
		PostalCode: l.PostalCode,
		CountryID:  l.CountryID.String(),
	}
}
