package mapsurface

import (
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
)

func UserIcon() models.MarkerIcon {
	return models.MarkerIcon{Name: constvars.MarkerIconUser, Color: "#2563eb", Fill: "#ffffff", Size: 30}
}

// ConsultantIcon has exactly two variants keyed on online status.
func ConsultantIcon(isOnline bool) models.MarkerIcon {
	if isOnline {
		return models.MarkerIcon{Name: constvars.MarkerIconOnline, Color: "#059669", Fill: "#10b981", Size: 36, OnlineDot: true}
	}
	return models.MarkerIcon{Name: constvars.MarkerIconOffline, Color: "#6b7280", Fill: "#9ca3af", Size: 36}
}
