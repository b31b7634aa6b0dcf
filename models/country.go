package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country is one persisted, derived country record. Identity is the name,
// compared case-insensitively: the store never holds two records whose
// normalized names collide.
type Country struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Capital         *string   `gorm:"type:varchar(100)" json:"capital"`
	Region          *string   `gorm:"type:varchar(100)" json:"region"`
	Population      int64     `gorm:"not null" json:"population"`
	CurrencyCode    *string   `gorm:"type:varchar(10)" json:"currency_code"`
	ExchangeRate    *float64  `json:"exchange_rate"`
	EstimatedGDP    *float64  `json:"estimated_gdp"`
	FlagURL         *string   `gorm:"type:varchar(200)" json:"flag_url"`
	LastRefreshedAt time.Time `gorm:"index" json:"last_refreshed_at"`
}

// TableName specifies the table name for Country model
func (*Country) TableName() string {
	return "countries"
}

// BeforeCreate sets up the model before creation
func (c *Country) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// NormalizedName returns the case-folded identity key for this record.
func (c *Country) NormalizedName() string {
	return NormalizeName(c.Name)
}

// Validate performs validation on the country model
func (c *Country) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidCountryName
	}
	if c.Population < 0 {
		return ErrInvalidPopulation
	}
	// A non-zero estimate without a rate breaks the derivation contract.
	if c.EstimatedGDP != nil && c.ExchangeRate == nil && *c.EstimatedGDP != 0 {
		return ErrInvalidEstimatedGDP
	}
	return nil
}

// NormalizeName trims surrounding whitespace and case-folds a country name.
// Every case-insensitive comparison in the system goes through this
// function; "France", " france " and "FRANCE" all map to the same key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SetLastRefreshedAt stamps the record with the refresh timestamp, always
// stored in UTC so every record touched by one refresh carries the exact
// same value.
func (c *Country) SetLastRefreshedAt(ts time.Time) {
	c.LastRefreshedAt = ts.UTC()
}
