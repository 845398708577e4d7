package models

type ListState string

const (
	ListStateLoading ListState = "loading"
	ListStateEmpty   ListState = "empty"
	ListStateResults ListState = "results"
)

type ListCard struct {
	ConsultantID  ConsultantID `json:"consultant_id"`
	Name          string       `json:"name"`
	Specialty     string       `json:"specialty"`
	Rating        string       `json:"rating"`
	Availability  string       `json:"availability"`
	DistanceLabel string       `json:"distance"`
	IsOnline      bool         `json:"is_online"`
	Focus         Coordinate   `json:"focus"`
}

type ListView struct {
	State    ListState  `json:"state"`
	Message  string     `json:"message,omitempty"`
	Count    int        `json:"count"`
	Degraded bool       `json:"degraded"`
	Cards    []ListCard `json:"cards"`
}

type MapMarkerView struct {
	Handle       string       `json:"handle"`
	Position     Coordinate   `json:"position"`
	Icon         MarkerIcon   `json:"icon"`
	Popup        Popup        `json:"popup"`
	PopupOpen    bool         `json:"popup_open"`
	ConsultantID ConsultantID `json:"consultant_id,omitempty"`
}

type MapView struct {
	Center     Coordinate      `json:"center"`
	Zoom       int             `json:"zoom"`
	UserMarker *MapMarkerView  `json:"user_marker,omitempty"`
	Cluster    []MapMarkerView `json:"cluster"`
}

type DialogView struct {
	State      DialogState  `json:"state"`
	Consultant *Consultant  `json:"consultant,omitempty"`
	Draft      BookingDraft `json:"draft"`
}

type AppView struct {
	Location      Coordinate     `json:"location"`
	Criteria      FilterCriteria `json:"criteria"`
	List          ListView       `json:"list"`
	Map           MapView        `json:"map"`
	Dialog        DialogView     `json:"dialog"`
	Notifications []Notification `json:"notifications"`
}
