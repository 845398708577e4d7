package models

import "consultant-discovery/internal/pkg/constvars"

// FilterCriteria is comparable; two equal values never need a re-query.
type FilterCriteria struct {
	SearchText   string `json:"search_text"`
	Specialty    string `json:"specialty"`
	Availability string `json:"availability"`
	MinRating    string `json:"min_rating"`
}

func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		SearchText:   "",
		Specialty:    constvars.FilterValueAll,
		Availability: constvars.FilterValueAll,
		MinRating:    constvars.FilterValueAll,
	}
}

type SearchRequest struct {
	Criteria   FilterCriteria
	Coordinate Coordinate
}
