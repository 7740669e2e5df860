package models

// MapPoint is a geolocated project marker for the cartography page.
type MapPoint struct {
	ID        int     `json:"id"`
	Nom       string  `json:"nom"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Projet    string  `json:"projet"`
}
