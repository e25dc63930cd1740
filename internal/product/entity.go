// Ruthwik | 2026
// entity.go

package product

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Product struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Stock       int       `db:"stock"`
	Category    string    `db:"category"`
	Images      ImageList `db:"images"`
	Sales       int       `db:"sales"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Image is a catalog image: a URL plus the external provider's public
// ID when the image was uploaded through the signature flow. Images
// added by plain URL carry no public ID.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
}

// ImageList is stored as a JSONB column.
type ImageList []Image

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(src any) error {
	if src == nil {
		*l = ImageList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan images: unsupported type %T", src)
	}

	return json.Unmarshal(data, l)
}

const lowStockThreshold = 10

func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}

func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock < lowStockThreshold
}
