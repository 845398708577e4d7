package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ConsultantID accepts both numeric and string identifiers from the backend.
type ConsultantID string

func (id *ConsultantID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var asString string
		if err := json.Unmarshal(data, &asString); err != nil {
			return err
		}
		*id = ConsultantID(asString)
		return nil
	}

	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return fmt.Errorf("consultant id must be a string or number, got %s", raw)
	}
	*id = ConsultantID(raw)
	return nil
}

func (id ConsultantID) String() string {
	return string(id)
}

// Consultant is an immutable snapshot for one query cycle.
type Consultant struct {
	ID            ConsultantID `json:"id"`
	Name          string       `json:"name"`
	Specialty     string       `json:"specialty"`
	Rating        float64      `json:"rating"`
	Availability  string       `json:"availability"`
	Bio           string       `json:"bio"`
	DistanceLabel string       `json:"distance"`
	IsOnline      bool         `json:"is_online"`
	Lat           float64      `json:"lat"`
	Lng           float64      `json:"lng"`
}

func (c Consultant) Coordinate() Coordinate {
	return Coordinate{Lat: c.Lat, Lng: c.Lng}
}

// MatchesSearchText is the only predicate applied client-side when the backend is unreachable.
func (c Consultant) MatchesSearchText(searchText string) bool {
	needle := strings.ToLower(strings.TrimSpace(searchText))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Specialty), needle) ||
		strings.Contains(strings.ToLower(c.Bio), needle)
}

func (c Consultant) RatingLabel() string {
	return strconv.FormatFloat(c.Rating, 'f', -1, 64)
}

// ResultSetSnapshot is one result-set generation as seen by renderers.
type ResultSetSnapshot struct {
	Generation  uint64       `json:"generation"`
	Loaded      bool         `json:"loaded"`
	Degraded    bool         `json:"degraded"`
	FetchedAt   time.Time    `json:"fetched_at"`
	Consultants []Consultant `json:"consultants"`
}
