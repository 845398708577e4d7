package mapsurface

import (
	"testing"

	"consultant-discovery/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryMapSurfaceClusterLifecycle(t *testing.T) {
	surface := NewMemoryMapSurface(zap.NewNop())

	first := surface.CreateMarker(models.MarkerSpec{ConsultantID: "1", Position: models.Coordinate{Lat: 1, Lng: 1}, Icon: ConsultantIcon(true)})
	second := surface.CreateMarker(models.MarkerSpec{ConsultantID: "2", Position: models.Coordinate{Lat: 2, Lng: 2}, Icon: ConsultantIcon(false)})
	assert.NotEqual(t, first, second)
	assert.Empty(t, surface.Snapshot().Cluster, "created markers are not visible until added")

	surface.ClusterAdd([]models.MarkerHandle{first, second, first})
	view := surface.Snapshot()
	require.Len(t, view.Cluster, 2)
	assert.Equal(t, models.ConsultantID("1"), view.Cluster[0].ConsultantID)
	assert.True(t, view.Cluster[0].Icon.OnlineDot)
	assert.False(t, view.Cluster[1].Icon.OnlineDot)

	assert.True(t, surface.OpenPopup(second))
	assert.True(t, surface.Snapshot().Cluster[1].PopupOpen)

	surface.ClusterRemove([]models.MarkerHandle{second})
	view = surface.Snapshot()
	require.Len(t, view.Cluster, 1)
	assert.False(t, view.Cluster[0].PopupOpen)
	assert.False(t, surface.OpenPopup(second), "removed handles are forgotten")
}

func TestMemoryMapSurfaceUserMarkerAndView(t *testing.T) {
	surface := NewMemoryMapSurface(zap.NewNop())

	view := surface.Snapshot()
	assert.Equal(t, models.DefaultCoordinate, view.Center)
	assert.Equal(t, 12, view.Zoom)
	assert.Nil(t, view.UserMarker)

	surface.PlaceUserMarker(models.Coordinate{Lat: 5, Lng: 6}, models.Popup{Title: "You are here"})
	surface.PlaceUserMarker(models.Coordinate{Lat: 7, Lng: 8}, models.Popup{Title: "You are here"})
	surface.SetView(models.Coordinate{Lat: 7, Lng: 8}, 13)

	view = surface.Snapshot()
	require.NotNil(t, view.UserMarker)
	assert.Equal(t, models.Coordinate{Lat: 7, Lng: 8}, view.UserMarker.Position)
	assert.Equal(t, "user", view.UserMarker.Icon.Name)
	assert.Empty(t, view.Cluster, "the user marker never joins the cluster")
	assert.Equal(t, 13, view.Zoom)
}
