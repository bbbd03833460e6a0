package payload

import (
	"marketsync/internal/core"

	"github.com/jellydator/validation"
)

type CreateProductRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Price        string `json:"price"`
	URI          string `json:"uri"`
	ThumbnailURI string `json:"thumbnailUri"`
	Filename     string `json:"filename"`
}

func (c *CreateProductRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.Description, validation.Required),
		validation.Field(&c.Price, validation.Required),
		validation.Field(&c.URI, validation.Required),
		validation.Field(&c.Filename, validation.Length(0, 255)),
	)
}

func (c *CreateProductRequest) ToListing() core.NewListing {
	return core.NewListing{
		Name:         c.Name,
		Description:  c.Description,
		Category:     c.Category,
		Price:        c.Price,
		URI:          c.URI,
		ThumbnailURI: c.ThumbnailURI,
		Filename:     c.Filename,
	}
}

type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
}

func (u *UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&u.Description, validation.Required),
		validation.Field(&u.Price, validation.Required),
	)
}

func (u *UpdateProductRequest) ToEdit() core.ListingEdit {
	return core.ListingEdit{
		Name:        u.Name,
		Description: u.Description,
		Category:    u.Category,
		Price:       u.Price,
	}
}

type UpdateMediaRequest struct {
	URI          string `json:"uri"`
	ThumbnailURI string `json:"thumbnailUri"`
	Filename     string `json:"filename"`
}

func (m *UpdateMediaRequest) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.URI, validation.Required),
		validation.Field(&m.ThumbnailURI, validation.Required),
		validation.Field(&m.Filename, validation.Length(0, 255)),
	)
}

func (m *UpdateMediaRequest) ToEdit() core.MediaEdit {
	return core.MediaEdit{
		URI:          m.URI,
		ThumbnailURI: m.ThumbnailURI,
		Filename:     m.Filename,
	}
}

// PurchaseRequest carries the price the user saw, so a changed listing is
// caught before anything is signed.
type PurchaseRequest struct {
	Price string `json:"price"`
}

func (p *PurchaseRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Price, validation.Required),
	)
}
