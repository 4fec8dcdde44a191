package landing

// BaseLanguage is the fallback when a requested language has no string table.
const BaseLanguage = "fr"

type Strings struct {
	ForSale          string
	Visit            string
	Contact          string
	Close            string
	AdditionalInfo   string
	EnergyLabel      string
	InProgress       string
	KeyFacts         string
	MapTitle         string
	MapFallback      string
	PhotoAlt         string
	NotProvided      string
	PriceOnRequest   string
	TypeLabel        string
	CityLabel        string
	SurfaceLabel     string
	RoomsLabel       string
	YearLabel        string
	PriceLabel       string
	DescriptionLabel string
	Amenities        AmenityStrings
}

type AmenityStrings struct {
	Pool             string
	Watering         string
	CarShelter       string
	Parking          string
	CaretakerHouse   string
	ElectricShutters string
	OutdoorLighting  string
}

var tables = map[string]Strings{
	"fr": {
		ForSale:          "à vendre",
		Visit:            "Planifier une visite",
		Contact:          "Contact",
		Close:            "Fermer",
		AdditionalInfo:   "Informations complémentaires",
		EnergyLabel:      "Diagnostic de performance énergétique",
		InProgress:       "En cours",
		KeyFacts:         "L'essentiel",
		MapTitle:         "Localisation",
		MapFallback:      "Carte indisponible pour cette adresse",
		PhotoAlt:         "Photo du bien",
		NotProvided:      "Non renseigné",
		PriceOnRequest:   "Prix sur demande",
		TypeLabel:        "Type de bien",
		CityLabel:        "Ville",
		SurfaceLabel:     "Surface",
		RoomsLabel:       "Pièces",
		YearLabel:        "Année de construction",
		PriceLabel:       "Prix",
		DescriptionLabel: "Description",
		Amenities: AmenityStrings{
			Pool:             "Piscine",
			Watering:         "Arrosage automatique",
			CarShelter:       "Abri voiture",
			Parking:          "Parking",
			CaretakerHouse:   "Maison de gardien",
			ElectricShutters: "Volets électriques",
			OutdoorLighting:  "Éclairage extérieur",
		},
	},
	"en": {
		ForSale:          "for sale",
		Visit:            "Book a visit",
		Contact:          "Contact",
		Close:            "Close",
		AdditionalInfo:   "Additional information",
		EnergyLabel:      "Energy performance diagnostic",
		InProgress:       "In progress",
		KeyFacts:         "Key facts",
		MapTitle:         "Location",
		MapFallback:      "Map unavailable for this address",
		PhotoAlt:         "Property photo",
		NotProvided:      "Not provided",
		PriceOnRequest:   "Price on request",
		TypeLabel:        "Property type",
		CityLabel:        "City",
		SurfaceLabel:     "Surface",
		RoomsLabel:       "Rooms",
		YearLabel:        "Year built",
		PriceLabel:       "Price",
		DescriptionLabel: "Description",
		Amenities: AmenityStrings{
			Pool:             "Swimming pool",
			Watering:         "Watering system",
			CarShelter:       "Car shelter",
			Parking:          "Parking",
			CaretakerHouse:   "Caretaker house",
			ElectricShutters: "Electric shutters",
			OutdoorLighting:  "Outdoor lighting",
		},
	},
	"es": {
		ForSale:          "en venta",
		Visit:            "Reservar una visita",
		Contact:          "Contacto",
		Close:            "Cerrar",
		AdditionalInfo:   "Información adicional",
		EnergyLabel:      "Diagnóstico de eficiencia energética",
		InProgress:       "En curso",
		KeyFacts:         "Lo esencial",
		MapTitle:         "Ubicación",
		MapFallback:      "Mapa no disponible para esta dirección",
		PhotoAlt:         "Foto de la propiedad",
		NotProvided:      "No indicado",
		PriceOnRequest:   "Precio a consultar",
		TypeLabel:        "Tipo de propiedad",
		CityLabel:        "Ciudad",
		SurfaceLabel:     "Superficie",
		RoomsLabel:       "Habitaciones",
		YearLabel:        "Año de construcción",
		PriceLabel:       "Precio",
		DescriptionLabel: "Descripción",
		Amenities: AmenityStrings{
			Pool:             "Piscina",
			Watering:         "Riego automático",
			CarShelter:       "Cochera",
			Parking:          "Parking",
			CaretakerHouse:   "Casa del guarda",
			ElectricShutters: "Persianas eléctricas",
			OutdoorLighting:  "Iluminación exterior",
		},
	},
	"de": {
		ForSale:          "zu verkaufen",
		Visit:            "Besichtigung vereinbaren",
		Contact:          "Kontakt",
		Close:            "Schließen",
		AdditionalInfo:   "Weitere Informationen",
		EnergyLabel:      "Energieausweis",
		InProgress:       "In Bearbeitung",
		KeyFacts:         "Das Wichtigste",
		MapTitle:         "Lage",
		MapFallback:      "Karte für diese Adresse nicht verfügbar",
		PhotoAlt:         "Foto der Immobilie",
		NotProvided:      "Keine Angabe",
		PriceOnRequest:   "Preis auf Anfrage",
		TypeLabel:        "Immobilientyp",
		CityLabel:        "Stadt",
		SurfaceLabel:     "Wohnfläche",
		RoomsLabel:       "Zimmer",
		YearLabel:        "Baujahr",
		PriceLabel:       "Preis",
		DescriptionLabel: "Beschreibung",
		Amenities: AmenityStrings{
			Pool:             "Pool",
			Watering:         "Bewässerungsanlage",
			CarShelter:       "Carport",
			Parking:          "Parkplatz",
			CaretakerHouse:   "Hausmeisterhaus",
			ElectricShutters: "Elektrische Rollläden",
			OutdoorLighting:  "Außenbeleuchtung",
		},
	},
}

// ForLanguage returns the string table for lang, falling back to the base
// language, along with the language actually resolved.
func ForLanguage(lang string) (Strings, string) {
	if s, ok := tables[lang]; ok {
		return s, lang
	}
	return tables[BaseLanguage], BaseLanguage
}
