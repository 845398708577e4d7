package models

type MarkerIcon struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	Fill      string `json:"fill"`
	Size      int    `json:"size"`
	OnlineDot bool   `json:"online_dot"`
}

// Popup is the payload bound to a consultant marker.
type Popup struct {
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle"`
	Rating        string      `json:"rating,omitempty"`
	Availability  string      `json:"availability,omitempty"`
	DistanceLabel string      `json:"distance,omitempty"`
	Bio           string      `json:"bio,omitempty"`
	IsOnline      bool        `json:"is_online"`
	BookAction    *BookAction `json:"book_action,omitempty"`
}

type BookAction struct {
	ConsultantID ConsultantID `json:"consultant_id"`
}

// MarkerHandle identifies a marker created on the map surface.
type MarkerHandle string

// MarkerSpec is everything the map surface needs to create one consultant marker.
type MarkerSpec struct {
	ConsultantID ConsultantID
	Position     Coordinate
	Icon         MarkerIcon
	Popup        Popup
}
