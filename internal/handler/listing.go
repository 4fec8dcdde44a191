package handler

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vitrine/internal/imaging"
	"vitrine/internal/landing"
	"vitrine/internal/model"
	"vitrine/internal/mw"
	"vitrine/internal/service"
)

const (
	maxUploadBytes = 32 << 20
	maxPhotos      = 2
)

var postalCodeRe = regexp.MustCompile(`^\d{5}$`)

// CreateListingHandler accepts the multipart listing submission, persists
// the property and publishes its landing page. The response carries the
// public URL of the generated document.
func CreateListingHandler(propertySvc *service.PropertyService, synth *landing.Synthesizer, uploadsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(mw.UserCtxKey).(string)
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		p, errMsg := propertyFromForm(r)
		if errMsg != "" {
			respondError(w, http.StatusBadRequest, errMsg)
			return
		}
		p.UserID = userID

		var files []*multipart.FileHeader
		if r.MultipartForm != nil {
			files = r.MultipartForm.File["photos"]
		}
		if len(files) > maxPhotos {
			respondError(w, http.StatusBadRequest, "at most two photos can be attached")
			return
		}
		if p.VideoURL != "" && len(files) > 0 {
			respondError(w, http.StatusBadRequest, "photos and video are mutually exclusive")
			return
		}

		// Resize failures block the submission: an unresized original would
		// defeat the page-weight assumptions of the gallery layout.
		for _, fh := range files {
			name, err := savePhoto(fh, uploadsDir)
			if err != nil {
				slog.Warn("photo processing failed", "file", fh.Filename, "error", err)
				respondError(w, http.StatusBadRequest, "could not process attached photo")
				return
			}
			p.Photos = append(p.Photos, name)
		}

		created, err := propertySvc.Create(r.Context(), p)
		if err != nil {
			slog.Error("property create failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		publicURL, err := synth.Publish(r.Context(), created)
		if err != nil {
			slog.Error("landing page publish failed", "property", created.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "could not generate landing page")
			return
		}

		if err := propertySvc.SetPublished(r.Context(), created.ID, publicURL); err != nil {
			slog.Error("property publish update failed", "property", created.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		respondJSON(w, http.StatusCreated, successEnvelope{Success: true, URL: publicURL})
	}
}

func GetListingHandler(propertySvc *service.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := propertySvc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, service.ErrPropertyNotFound) {
				respondError(w, http.StatusNotFound, "listing not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

func ListListingsHandler(propertySvc *service.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(mw.UserCtxKey).(string)

		properties, err := propertySvc.ListByUser(r.Context(), userID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if len(properties) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondJSON(w, http.StatusOK, properties)
	}
}

// UpdateListingHandler edits a draft listing. Owner-only; published listings
// are immutable.
func UpdateListingHandler(propertySvc *service.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(mw.UserCtxKey).(string)

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		p, errMsg := propertyFromForm(r)
		if errMsg != "" {
			respondError(w, http.StatusBadRequest, errMsg)
			return
		}
		p.ID = chi.URLParam(r, "id")

		if err := propertySvc.Update(r.Context(), userID, p); err != nil {
			switch {
			case errors.Is(err, service.ErrPropertyNotFound):
				respondError(w, http.StatusNotFound, "listing not found")
			case errors.Is(err, service.ErrNotOwner):
				respondError(w, http.StatusForbidden, "not your listing")
			case errors.Is(err, service.ErrNotDraft):
				respondError(w, http.StatusConflict, "published listings cannot be edited")
			default:
				respondError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func DeleteListingHandler(propertySvc *service.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(mw.UserCtxKey).(string)

		if err := propertySvc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
			switch {
			case errors.Is(err, service.ErrPropertyNotFound):
				respondError(w, http.StatusNotFound, "listing not found")
			case errors.Is(err, service.ErrNotOwner):
				respondError(w, http.StatusForbidden, "not your listing")
			default:
				respondError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// propertyFromForm validates the submitted fields and builds the record.
// Returns a non-empty message on the first validation failure.
func propertyFromForm(r *http.Request) (*model.Property, string) {
	p := &model.Property{
		PropertyType: r.FormValue("property_type"),
		Country:      r.FormValue("country"),
		City:         r.FormValue("city"),
		PostalCode:   r.FormValue("postal_code"),
		DPE:          r.FormValue("dpe"),
		Description:  r.FormValue("description"),
		FirstName:    r.FormValue("first_name"),
		LastName:     r.FormValue("last_name"),
		Phone:        r.FormValue("phone"),
		VideoURL:     r.FormValue("video_url"),
		Language:     r.FormValue("language"),
	}

	if p.PropertyType == "" || p.City == "" || p.Country == "" {
		return nil, "property type, city and country are required"
	}
	if !postalCodeRe.MatchString(p.PostalCode) {
		return nil, "postal code must be exactly 5 digits"
	}
	if !model.ValidDPE(p.DPE) {
		return nil, "invalid energy grade"
	}
	if p.Language == "" {
		p.Language = landing.BaseLanguage
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price <= 0 {
		return nil, "price must be a positive number"
	}
	p.Price = price

	surface, err := strconv.Atoi(r.FormValue("surface"))
	if err != nil || surface <= 0 {
		return nil, "surface must be a positive number"
	}
	p.Surface = surface

	if v := r.FormValue("rooms"); v != "" {
		if p.Rooms, err = strconv.Atoi(v); err != nil || p.Rooms < 0 {
			return nil, "rooms must be a number"
		}
	}
	if v := r.FormValue("year_built"); v != "" {
		if p.YearBuilt, err = strconv.Atoi(v); err != nil || p.YearBuilt < 0 {
			return nil, "year built must be a number"
		}
	}

	p.Amenities = model.Amenities{
		Pool:             formBool(r, "pool"),
		Watering:         formBool(r, "watering"),
		CarShelter:       formBool(r, "car_shelter"),
		Parking:          formBool(r, "parking"),
		CaretakerHouse:   formBool(r, "caretaker_house"),
		ElectricShutters: formBool(r, "electric_shutters"),
		OutdoorLighting:  formBool(r, "outdoor_lighting"),
	}

	return p, ""
}

func formBool(r *http.Request, key string) bool {
	switch r.FormValue(key) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// savePhoto resizes an upload and stores it under a fresh name. The original
// filename never reaches the filesystem.
func savePhoto(fh *multipart.FileHeader, uploadsDir string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := imaging.Resize(f)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ".jpg"
	if err := os.WriteFile(filepath.Join(uploadsDir, name), data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}
