package catalog

import (
	"context"
	"log/slog"

	"hotel-booking/internal/pkg/metrics"
	"hotel-booking/internal/usecase/queries"
)

// FallbackProvider answers from the fallback whenever the primary fails.
type FallbackProvider struct {
	name     string
	primary  queries.CatalogProvider
	fallback queries.CatalogProvider
}

func NewFallbackProvider(name string, primary, fallback queries.CatalogProvider) *FallbackProvider {
	return &FallbackProvider{name: name, primary: primary, fallback: fallback}
}

func (p *FallbackProvider) Search(ctx context.Context, location string) ([]*queries.HotelView, error) {
	hotels, err := p.primary.Search(ctx, location)
	if err == nil {
		return hotels, nil
	}
	slog.Warn("catalog search failed, serving fallback", "provider", p.name, "location", location, "error", err.Error())
	metrics.ObserveFallback(p.name, "search")
	return p.fallback.Search(ctx, location)
}

func (p *FallbackProvider) Get(ctx context.Context, id string) (*queries.HotelView, error) {
	hotel, err := p.primary.Get(ctx, id)
	if err == nil {
		return hotel, nil
	}
	slog.Warn("catalog lookup failed, serving fallback", "provider", p.name, "hotel_id", id, "error", err.Error())
	metrics.ObserveFallback(p.name, "get")
	return p.fallback.Get(ctx, id)
}
