package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"vitrine/internal/model"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrNotOwner         = errors.New("property belongs to another user")
	ErrNotDraft         = errors.New("only draft listings can be edited")
)

type PropertyService struct {
	db *sql.DB
}

func NewPropertyService(db *sql.DB) *PropertyService {
	return &PropertyService{db: db}
}

const propertyColumns = `
	id, user_id, property_type, country, city, postal_code, price, surface,
	rooms, year_built, dpe, description, first_name, last_name, phone,
	amenities, photos, video_url, language, status, public_url, created_at
`

func (s *PropertyService) Create(ctx context.Context, p *model.Property) (*model.Property, error) {
	amenities, err := json.Marshal(p.Amenities)
	if err != nil {
		return nil, fmt.Errorf("marshal amenities: %w", err)
	}
	photos, err := json.Marshal(photosOrEmpty(p.Photos))
	if err != nil {
		return nil, fmt.Errorf("marshal photos: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO properties (user_id, property_type, country, city, postal_code, price, surface,
			rooms, year_built, dpe, description, first_name, last_name, phone,
			amenities, photos, video_url, language, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at
	`, p.UserID, p.PropertyType, p.Country, p.City, p.PostalCode, p.Price, p.Surface,
		p.Rooms, p.YearBuilt, p.DPE, p.Description, p.FirstName, p.LastName, p.Phone,
		amenities, photos, p.VideoURL, p.Language, model.StatusDraft)

	created := *p
	created.Status = model.StatusDraft
	created.Photos = photosOrEmpty(p.Photos)
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}

	return &created, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	return scanProperty(row)
}

// Update rewrites an editable listing. Edits are restricted to the owner and
// to listings still in draft status.
func (s *PropertyService) Update(ctx context.Context, userID string, p *model.Property) error {
	current, err := s.Get(ctx, p.ID)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return ErrNotOwner
	}
	if current.Status != model.StatusDraft {
		return ErrNotDraft
	}

	amenities, err := json.Marshal(p.Amenities)
	if err != nil {
		return fmt.Errorf("marshal amenities: %w", err)
	}
	photos, err := json.Marshal(photosOrEmpty(p.Photos))
	if err != nil {
		return fmt.Errorf("marshal photos: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE properties SET property_type = $1, country = $2, city = $3, postal_code = $4,
			price = $5, surface = $6, rooms = $7, year_built = $8, dpe = $9, description = $10,
			first_name = $11, last_name = $12, phone = $13, amenities = $14, photos = $15,
			video_url = $16, language = $17
		WHERE id = $18
	`, p.PropertyType, p.Country, p.City, p.PostalCode, p.Price, p.Surface, p.Rooms,
		p.YearBuilt, p.DPE, p.Description, p.FirstName, p.LastName, p.Phone,
		amenities, photos, p.VideoURL, p.Language, p.ID)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	return nil
}

// SetPublished records the generated public URL and flips the listing out of
// draft status.
func (s *PropertyService) SetPublished(ctx context.Context, id, publicURL string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE properties SET public_url = $1, status = $2 WHERE id = $3`,
		publicURL, model.StatusPublished, id)
	if err != nil {
		return fmt.Errorf("set public url: %w", err)
	}
	return nil
}

// Delete is a peripheral owner-only route; the core never deletes listings.
func (s *PropertyService) Delete(ctx context.Context, userID, id string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return ErrNotOwner
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return nil
}

func (s *PropertyService) ListByUser(ctx context.Context, userID string) ([]model.Property, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query properties: %w", err)
	}
	defer rows.Close()

	var properties []model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return properties, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*model.Property, error) {
	var p model.Property
	var amenities, photos []byte
	err := row.Scan(&p.ID, &p.UserID, &p.PropertyType, &p.Country, &p.City, &p.PostalCode,
		&p.Price, &p.Surface, &p.Rooms, &p.YearBuilt, &p.DPE, &p.Description,
		&p.FirstName, &p.LastName, &p.Phone, &amenities, &photos, &p.VideoURL,
		&p.Language, &p.Status, &p.PublicURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("scan property: %w", err)
	}

	if err := json.Unmarshal(amenities, &p.Amenities); err != nil {
		return nil, fmt.Errorf("unmarshal amenities: %w", err)
	}
	if err := json.Unmarshal(photos, &p.Photos); err != nil {
		return nil, fmt.Errorf("unmarshal photos: %w", err)
	}

	return &p, nil
}

func photosOrEmpty(photos []string) []string {
	if photos == nil {
		return []string{}
	}
	return photos
}
