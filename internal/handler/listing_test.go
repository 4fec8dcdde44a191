package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/mw"
)

func validListingFields() map[string]string {
	return map[string]string{
		"property_type": "Appartement",
		"country":       "France",
		"city":          "Marseille",
		"postal_code":   "13001",
		"price":         "250000",
		"surface":       "80",
		"rooms":         "4",
		"dpe":           "C",
		"language":      "fr",
		"description":   "Bel appartement lumineux.",
		"first_name":    "Jean",
		"last_name":     "Martin",
		"phone":         "+33 6 12 34 56 78",
	}
}

func listingRequest(t *testing.T, fields map[string]string, withVideoAndPhoto bool) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mp := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mp.WriteField(k, v))
	}
	if withVideoAndPhoto {
		part, err := mp.CreateFormFile("photos", "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mp.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/listings", &body)
	req.Header.Set("Content-Type", mp.FormDataContentType())
	return req.WithContext(context.WithValue(req.Context(), mw.UserCtxKey, "user-1"))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.False(t, env.Success)
	return env.Error
}

// Validation failures are rejected before any service is touched, so the
// handler runs with nil dependencies here.
func TestCreateListingValidation(t *testing.T) {
	h := CreateListingHandler(nil, nil, t.TempDir())

	tests := []struct {
		name    string
		mutate  func(map[string]string)
		wantMsg string
	}{
		{"missing city", func(f map[string]string) { f["city"] = "" }, "required"},
		{"missing property type", func(f map[string]string) { f["property_type"] = "" }, "required"},
		{"postal code too short", func(f map[string]string) { f["postal_code"] = "1300" }, "postal code"},
		{"postal code with letters", func(f map[string]string) { f["postal_code"] = "1300A" }, "postal code"},
		{"postal code too long", func(f map[string]string) { f["postal_code"] = "130011" }, "postal code"},
		{"price not a number", func(f map[string]string) { f["price"] = "cher" }, "price"},
		{"price negative", func(f map[string]string) { f["price"] = "-5" }, "price"},
		{"surface zero", func(f map[string]string) { f["surface"] = "0" }, "surface"},
		{"unknown energy grade", func(f map[string]string) { f["dpe"] = "H" }, "energy grade"},
		{"rooms not a number", func(f map[string]string) { f["rooms"] = "quatre" }, "rooms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validListingFields()
			tt.mutate(fields)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, listingRequest(t, fields, false))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec), tt.wantMsg)
		})
	}
}

func TestCreateListingAcceptsPendingDPE(t *testing.T) {
	// "En cours" must pass grade validation in any casing; the request then
	// fails later at the nil service, which is fine for this check.
	fields := validListingFields()
	fields["dpe"] = "en cours"

	p, errMsg := propertyFromForm(listingRequest(t, fields, false))
	require.Empty(t, errMsg)
	assert.Equal(t, "en cours", p.DPE)
}

func TestCreateListingRejectsPhotosWithVideo(t *testing.T) {
	h := CreateListingHandler(nil, nil, t.TempDir())

	fields := validListingFields()
	fields["video_url"] = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, listingRequest(t, fields, true))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "mutually exclusive")
}

func TestCreateListingRequiresAuth(t *testing.T) {
	h := CreateListingHandler(nil, nil, t.TempDir())

	req := httptest.NewRequest(http.MethodPost, "/api/listings", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPropertyFromFormDefaults(t *testing.T) {
	fields := validListingFields()
	delete(fields, "language")
	fields["pool"] = "on"
	fields["parking"] = "true"

	p, errMsg := propertyFromForm(listingRequest(t, fields, false))
	require.Empty(t, errMsg)

	assert.Equal(t, "fr", p.Language)
	assert.True(t, p.Amenities.Pool)
	assert.True(t, p.Amenities.Parking)
	assert.False(t, p.Amenities.Watering)
}
