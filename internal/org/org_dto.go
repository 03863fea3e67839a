package org

type CreateRegionRequest struct {
	Name string `json:"name" binding:"required"`
}

type RegionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateCountryRequest struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required,len=2,alpha"`
	RegionID string `json:"region_id" binding:"required,uuid"`
}

type CountryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	RegionID string `json:"region_id"`
}

type CreateLocationRequest struct {
	Street     string `json:"street"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code"`
	CountryID  string `json:"country_id" binding:"required,uuid"`
}

type LocationResponse struct {
	ID         string `json:"id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code,omitempty"`
	CountryID  string `json:"country_id"`
}
