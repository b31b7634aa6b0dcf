package countries

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/joefazee/atlas/models"
)

// CountryFilter narrows List results. Zero-value fields are ignored.
type CountryFilter struct {
	Region       string
	CurrencyCode string
	SortGDPDesc  bool
}

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new country repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// UpsertBatch lands the whole batch or nothing. Records are matched to
// existing rows by case-folded name; on a match every field is overwritten
// in place, otherwise a new row is inserted. The surrounding transaction
// is the write lock one refresh holds: readers see the pre- or
// post-refresh rows, never a mix.
func (r *repository) UpsertBatch(ctx context.Context, records []models.Country) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			record := &records[i]

			var existing models.Country
			err := tx.Where("lower(name) = ?", record.NormalizedName()).First(&existing).Error
			switch {
			case err == nil:
				record.ID = existing.ID
				if err := tx.Model(&existing).Select("*").Omit("id").Updates(record).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(record).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}

// List returns matching records; an empty filter returns everything.
// Descending GDP sort puts records without an estimate last.
func (r *repository) List(ctx context.Context, filter CountryFilter) ([]models.Country, error) {
	query := r.db.WithContext(ctx).Model(&models.Country{})

	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.CurrencyCode != "" {
		query = query.Where("currency_code = ?", filter.CurrencyCode)
	}
	if filter.SortGDPDesc {
		query = query.Order("estimated_gdp DESC NULLS LAST")
	}

	var countries []models.Country
	err := query.Find(&countries).Error
	return countries, err
}

// GetByName returns the record whose case-folded name matches.
func (r *repository) GetByName(ctx context.Context, name string) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).
		Where("lower(name) = ?", models.NormalizeName(name)).
		First(&country).Error
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// DeleteByName removes the record whose case-folded name matches and
// returns what was deleted.
func (r *repository) DeleteByName(ctx context.Context, name string) (*models.Country, error) {
	var deleted *models.Country
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var country models.Country
		if err := tx.Where("lower(name) = ?", models.NormalizeName(name)).First(&country).Error; err != nil {
			return err
		}
		if err := tx.Delete(&country).Error; err != nil {
			return err
		}
		deleted = &country
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// Count returns the number of stored records.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Country{}).Count(&count).Error
	return count, err
}

// LastRefreshedAt returns the most recent refresh timestamp across all
// records, or nil when the store is empty.
func (r *repository) LastRefreshedAt(ctx context.Context) (*time.Time, error) {
	var result struct {
		Last *time.Time
	}
	err := r.db.WithContext(ctx).
		Model(&models.Country{}).
		Select("MAX(last_refreshed_at) AS last").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result.Last, nil
}

// TopByGDP returns up to limit records ranked by estimated GDP, excluding
// records without an estimate.
func (r *repository) TopByGDP(ctx context.Context, limit int) ([]models.Country, error) {
	var countries []models.Country
	err := r.db.WithContext(ctx).
		Where("estimated_gdp IS NOT NULL").
		Order("estimated_gdp DESC").
		Limit(limit).
		Find(&countries).Error
	return countries, err
}
