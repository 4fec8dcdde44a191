package model

import (
	"strings"
	"time"
)

// DPEPending is the sentinel grade used while the energy diagnostic has been
// ordered but not yet delivered. Compared case-insensitively.
const DPEPending = "En cours"

var DPEGrades = []string{"A", "B", "C", "D", "E", "F", "G"}

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Property struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	PropertyType string    `json:"property_type"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	PostalCode   string    `json:"postal_code"`
	Price        float64   `json:"price"`
	Surface      int       `json:"surface"`
	Rooms        int       `json:"rooms,omitempty"`
	YearBuilt    int       `json:"year_built,omitempty"`
	DPE          string    `json:"dpe"`
	Description  string    `json:"description"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	Amenities    Amenities `json:"amenities"`
	Photos       []string  `json:"photos"`
	VideoURL     string    `json:"video_url,omitempty"`
	Language     string    `json:"language"`
	Status       string    `json:"status"`
	PublicURL    string    `json:"public_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Amenities struct {
	Pool             bool `json:"pool"`
	Watering         bool `json:"watering"`
	CarShelter       bool `json:"car_shelter"`
	Parking          bool `json:"parking"`
	CaretakerHouse   bool `json:"caretaker_house"`
	ElectricShutters bool `json:"electric_shutters"`
	OutdoorLighting  bool `json:"outdoor_lighting"`
}

// ValidDPE reports whether grade is one of A..G or the pending sentinel.
func ValidDPE(grade string) bool {
	if strings.EqualFold(grade, DPEPending) {
		return true
	}
	for _, g := range DPEGrades {
		if strings.EqualFold(grade, g) {
			return true
		}
	}
	return false
}
