package countries

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/models"
)

// service implements the Service interface
type service struct {
	repo          Repository
	gateway       Gateway
	renderer      SummaryRenderer
	artifactCache cache.Cache[[]byte]
	sanitizer     sanitizer.HTMLStripperer
	multiplier    MultiplierSource
	logger        logger.Logger
	topN          int
}

// NewService wires the refresh pipeline.
func NewService(
	repo Repository,
	gateway Gateway,
	renderer SummaryRenderer,
	artifactCache cache.Cache[[]byte],
	stripper sanitizer.HTMLStripperer,
	multiplier MultiplierSource,
	log logger.Logger,
	config *Config,
) Service {
	return &service{
		repo:          repo,
		gateway:       gateway,
		renderer:      renderer,
		artifactCache: artifactCache,
		sanitizer:     stripper,
		multiplier:    multiplier,
		logger:        log,
		topN:          config.summaryTopN(),
	}
}

// Refresh runs one pipeline pass. Fetch and validation failures abort
// before any write. Persistence is all-or-nothing. The summary artifact is
// best effort: once the batch has committed, a render fault is logged and
// swallowed, never surfaced as a refresh failure.
func (s *service) Refresh(ctx context.Context) (*RefreshResponse, error) {
	raw, rates, err := s.fetchSources(ctx)
	if err != nil {
		return nil, err
	}

	// One timestamp for every record this refresh touches.
	refreshedAt := time.Now().UTC().Truncate(time.Microsecond)

	// Sanitize before validating so a name that is nothing but markup
	// fails the required-field check instead of slipping through.
	cleaned := make([]RawCountry, len(raw))
	for i, entity := range raw {
		cleaned[i] = s.cleanEntity(entity)
	}

	if verr := validateBatch(cleaned); verr != nil {
		return nil, verr
	}

	records := make([]models.Country, 0, len(cleaned))
	for _, entity := range cleaned {
		records = append(records, deriveCountry(entity, rates, s.multiplier, refreshedAt))
	}

	if err := s.repo.UpsertBatch(ctx, records); err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	s.generateSummary(ctx, total, refreshedAt)

	s.logger.Info("countries refreshed", map[string]interface{}{
		"total_countries":   total,
		"last_refreshed_at": refreshedAt,
	})

	return &RefreshResponse{
		Message:         "Countries data refreshed",
		TotalCountries:  total,
		LastRefreshedAt: refreshedAt,
	}, nil
}

// fetchSources pulls both feeds concurrently; the first failure cancels
// the sibling fetch.
func (s *service) fetchSources(ctx context.Context) ([]RawCountry, map[string]float64, error) {
	var (
		raw   []RawCountry
		rates map[string]float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = s.gateway.FetchCountries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rates, err = s.gateway.FetchRates(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return raw, rates, nil
}

// cleanEntity strips markup and surrounding whitespace from the free-text
// fields the directory feed controls.
func (s *service) cleanEntity(raw RawCountry) RawCountry {
	raw.Name = strings.TrimSpace(s.sanitizer.StripHTML(raw.Name))
	raw.Capital = strings.TrimSpace(s.sanitizer.StripHTML(raw.Capital))
	raw.Region = strings.TrimSpace(s.sanitizer.StripHTML(raw.Region))
	return raw
}

// generateSummary re-renders the artifact slot from committed state. Any
// failure here leaves the previous artifact in place.
func (s *service) generateSummary(ctx context.Context, total int64, refreshedAt time.Time) {
	top, err := s.repo.TopByGDP(ctx, s.topN)
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"stage": "summary"})
		return
	}

	artifact, err := s.renderer.Render(SummarySnapshot{
		TotalCountries: total,
		RefreshedAt:    refreshedAt,
		TopByGDP:       top,
	})
	if err != nil {
		s.logger.Error(err, map[string]interface{}{"stage": "summary"})
		return
	}

	if err := s.artifactCache.Set(ctx, SummaryArtifactKey, artifact, 0); err != nil {
		s.logger.Error(err, map[string]interface{}{"stage": "summary"})
	}
}

// ListCountries returns records matching the optional filters.
func (s *service) ListCountries(ctx context.Context, req *ListCountriesRequest) ([]CountryResponse, error) {
	countries, err := s.repo.List(ctx, req.Filter())
	if err != nil {
		return nil, err
	}
	return ToCountryResponseList(countries), nil
}

// GetCountryByName returns one record, matched case-insensitively.
func (s *service) GetCountryByName(ctx context.Context, name string) (*CountryResponse, error) {
	country, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToCountryResponse(country), nil
}

// DeleteCountryByName removes one record and returns it.
func (s *service) DeleteCountryByName(ctx context.Context, name string) (*CountryResponse, error) {
	country, err := s.repo.DeleteByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToCountryResponse(country), nil
}

// Status reports the record count and the most recent refresh timestamp.
func (s *service) Status(ctx context.Context) (*StatusResponse, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	last, err := s.repo.LastRefreshedAt(ctx)
	if err != nil {
		return nil, err
	}
	return &StatusResponse{
		TotalCountries:  total,
		LastRefreshedAt: last,
	}, nil
}

// SummaryImage returns the cached artifact bytes, or ErrSummaryNotFound if
// no refresh has produced one yet.
func (s *service) SummaryImage(ctx context.Context) ([]byte, error) {
	artifact, err := s.artifactCache.Get(ctx, SummaryArtifactKey)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, models.ErrSummaryNotFound
		}
		return nil, err
	}
	return artifact, nil
}
