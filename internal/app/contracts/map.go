package contracts

import "consultant-discovery/internal/app/models"

// MapSurface is the interactive map. Clustering geometry and tile rendering stay inside it.
type MapSurface interface {
	CreateMarker(spec models.MarkerSpec) models.MarkerHandle
	ClusterAdd(handles []models.MarkerHandle)
	ClusterRemove(handles []models.MarkerHandle)
	SetView(center models.Coordinate, zoom int)
	OpenPopup(handle models.MarkerHandle) bool
	PlaceUserMarker(position models.Coordinate, popup models.Popup)
	Snapshot() models.MapView
}

type MarkerSynchronizer interface {
	Sync(consultants []models.Consultant)
	Focus(lat, lng float64) bool
	PlaceUser(coordinate models.Coordinate)
	BoundCount() int
}
