package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hotel-booking/internal/usecase/queries"
)

type JSONCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// CachedProvider memoises outbound catalog answers. Cache failures degrade to a direct call.
type CachedProvider struct {
	inner queries.CatalogProvider
	cache JSONCache
	ttl   time.Duration
}

func NewCachedProvider(inner queries.CatalogProvider, cache JSONCache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, cache: cache, ttl: ttl}
}

func (p *CachedProvider) Search(ctx context.Context, location string) ([]*queries.HotelView, error) {
	key := "catalog:search:" + strings.ToLower(strings.TrimSpace(location))
	var cached []*queries.HotelView
	if p.lookup(ctx, key, &cached) {
		return cached, nil
	}
	hotels, err := p.inner.Search(ctx, location)
	if err != nil {
		return nil, err
	}
	p.store(ctx, key, hotels)
	return hotels, nil
}

func (p *CachedProvider) Get(ctx context.Context, id string) (*queries.HotelView, error) {
	key := "catalog:hotel:" + id
	var cached queries.HotelView
	if p.lookup(ctx, key, &cached) {
		return &cached, nil
	}
	hotel, err := p.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.store(ctx, key, hotel)
	return hotel, nil
}

func (p *CachedProvider) lookup(ctx context.Context, key string, dst any) bool {
	ok, err := p.cache.Get(ctx, key, dst)
	if err != nil {
		slog.Warn("catalog cache read failed", "key", key, "error", err.Error())
		return false
	}
	return ok
}

func (p *CachedProvider) store(ctx context.Context, key string, v any) {
	if err := p.cache.Set(ctx, key, v, p.ttl); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err.Error())
	}
}
