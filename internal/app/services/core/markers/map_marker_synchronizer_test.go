package markers

import (
	"testing"

	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/app/services/shared/mapsurface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func consultants() []models.Consultant {
	return []models.Consultant{
		{ID: "1", Name: "Dr. Mehta", Specialty: "Anxiety", Rating: 4.5, IsOnline: true, Lat: 23.03, Lng: 72.58},
		{ID: "2", Name: "Ms. Shah", Specialty: "Career", Rating: 4, IsOnline: false, Lat: 23.05, Lng: 72.6},
	}
}

func TestSyncReplacesTheWholeBinding(t *testing.T) {
	surface := mapsurface.NewMemoryMapSurface(zap.NewNop())
	synchronizer := NewMapMarkerSynchronizer(surface, zap.NewNop())

	synchronizer.Sync(consultants())
	assert.Equal(t, 2, synchronizer.BoundCount())

	view := surface.Snapshot()
	require.Len(t, view.Cluster, 2)
	assert.Equal(t, "consultant-online", view.Cluster[0].Icon.Name)
	assert.Equal(t, "consultant-offline", view.Cluster[1].Icon.Name)
	assert.Equal(t, "Dr. Mehta", view.Cluster[0].Popup.Title)
	require.NotNil(t, view.Cluster[0].Popup.BookAction)
	assert.Equal(t, models.ConsultantID("1"), view.Cluster[0].Popup.BookAction.ConsultantID)
	firstHandles := []string{view.Cluster[0].Handle, view.Cluster[1].Handle}

	synchronizer.Sync(consultants()[1:])
	view = surface.Snapshot()
	require.Len(t, view.Cluster, 1, "previous markers are removed before the new ones are added")
	assert.NotContains(t, firstHandles, view.Cluster[0].Handle)
	assert.Equal(t, 1, synchronizer.BoundCount())

	synchronizer.Sync(nil)
	assert.Empty(t, surface.Snapshot().Cluster)
	assert.Equal(t, 0, synchronizer.BoundCount())
}

func TestFocusOpensPopupAtExactCoordinate(t *testing.T) {
	surface := mapsurface.NewMemoryMapSurface(zap.NewNop())
	synchronizer := NewMapMarkerSynchronizer(surface, zap.NewNop())
	synchronizer.Sync(consultants())

	assert.True(t, synchronizer.Focus(23.05, 72.6))
	view := surface.Snapshot()
	assert.Equal(t, models.Coordinate{Lat: 23.05, Lng: 72.6}, view.Center)
	assert.Equal(t, 15, view.Zoom)
	assert.False(t, view.Cluster[0].PopupOpen)
	assert.True(t, view.Cluster[1].PopupOpen)

	assert.False(t, synchronizer.Focus(10, 10), "no marker there, the view still moves")
	assert.Equal(t, models.Coordinate{Lat: 10, Lng: 10}, surface.Snapshot().Center)
}

func TestPlaceUserStaysOutOfCluster(t *testing.T) {
	surface := mapsurface.NewMemoryMapSurface(zap.NewNop())
	synchronizer := NewMapMarkerSynchronizer(surface, zap.NewNop())

	synchronizer.PlaceUser(models.Coordinate{Lat: 1, Lng: 2})
	synchronizer.Sync(consultants())
	synchronizer.PlaceUser(models.Coordinate{Lat: 3, Lng: 4})

	view := surface.Snapshot()
	require.NotNil(t, view.UserMarker)
	assert.Equal(t, models.Coordinate{Lat: 3, Lng: 4}, view.UserMarker.Position)
	assert.Equal(t, "You are here", view.UserMarker.Popup.Title)
	assert.Len(t, view.Cluster, 2)
	assert.Equal(t, 2, synchronizer.BoundCount())
}
