package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RewardResource is the raw reward record as delivered by the catalog store.
// Image fields may be relative to the API base URL.
type RewardResource struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ReleaseDate   string          `json:"releaseDate,omitempty"`
	AddedDate     string          `json:"addedDate,omitempty"`
	DeveloperName string          `json:"developerName"`
	PublisherName string          `json:"publisherName"`
	Headline      string          `json:"headline"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CoverImage    *string         `json:"coverImage,omitempty"`
	HeroImage     *string         `json:"heroImage,omitempty"`
	Image         *string         `json:"image,omitempty"`
	Images        []string        `json:"images,omitempty"`
	Platform      string          `json:"platform"`
	Tags          []string        `json:"tags,omitempty"`
	// Quantity is nil when stock is unknown or unlimited.
	Quantity *int `json:"quantity,omitempty"`
}

// Reward is the display-ready form of a RewardResource. Image fields are
// absolute URLs and tags are lowercase. Rewards are derived, never edited.
type Reward struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ReleaseDate   *time.Time      `json:"releaseDate,omitempty"`
	AddedDate     *time.Time      `json:"addedDate,omitempty"`
	DeveloperName string          `json:"developerName"`
	PublisherName string          `json:"publisherName"`
	Headline      string          `json:"headline"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CoverImage    *string         `json:"coverImage,omitempty"`
	HeroImage     *string         `json:"heroImage,omitempty"`
	Image         *string         `json:"image,omitempty"`
	Images        []string        `json:"images,omitempty"`
	Platform      string          `json:"platform"`
	Tags          []string        `json:"tags,omitempty"`
	Quantity      *int            `json:"quantity,omitempty"`

	// InvalidDates names the date fields whose source value could not be parsed.
	InvalidDates []string `json:"-"`
}

// OutOfStock reports whether the reward has a known quantity of zero.
func (r Reward) OutOfStock() bool {
	return r.Quantity != nil && *r.Quantity == 0
}
