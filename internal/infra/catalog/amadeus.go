package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/metrics"
	"hotel-booking/internal/usecase/queries"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	amadeusService   = "amadeus"
	amadeusPageLimit = 10
	byCityPath       = "/v1/reference-data/locations/hotels/by-city"
	byHotelsPath     = "/v1/reference-data/locations/hotels/by-hotels"
	tokenPath        = "/v1/security/oauth2/token"
)

var errUnknownCity = errs.Validation("location is not a known city code")

// cityCodes maps the city names used by the sample data onto IATA codes.
var cityCodes = map[string]string{
	"mumbai":    "BOM",
	"bombay":    "BOM",
	"chennai":   "MAA",
	"madras":    "MAA",
	"delhi":     "DEL",
	"new delhi": "DEL",
	"bangalore": "BLR",
	"bengaluru": "BLR",
	"kolkata":   "CCU",
	"hyderabad": "HYD",
	"goa":       "GOI",
	"jaipur":    "JAI",
}

// AmadeusProvider reads the Amadeus hotel reference API. Searches with ALL or an unmapped city
// fail so the fallback can answer from the sample set.
type AmadeusProvider struct {
	baseURL string
	hc      *http.Client
	rl      *rate.Limiter
	backoff func(attempt int) time.Duration
}

func NewAmadeusProvider(cfg config.CatalogConfig) *AmadeusProvider {
	base := &http.Client{Timeout: cfg.Timeout}
	cc := clientcredentials.Config{
		ClientID:     cfg.AmadeusClientID,
		ClientSecret: cfg.AmadeusClientSecret,
		TokenURL:     strings.TrimRight(cfg.AmadeusBaseURL, "/") + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 5
	}
	return &AmadeusProvider{
		baseURL: strings.TrimRight(cfg.AmadeusBaseURL, "/"),
		hc:      cc.Client(tokenCtx),
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
		backoff: jitteredBackoff,
	}
}

type amadeusHotel struct {
	HotelID string `json:"hotelId"`
	Name    string `json:"name"`
	GeoCode struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"geoCode"`
	Address struct {
		Lines       []string `json:"lines"`
		CityName    string   `json:"cityName"`
		CountryCode string   `json:"countryCode"`
	} `json:"address"`
}

type amadeusResponse struct {
	Data []amadeusHotel `json:"data"`
}

func (p *AmadeusProvider) Search(ctx context.Context, location string) ([]*queries.HotelView, error) {
	code, err := cityCode(location)
	if err != nil {
		return nil, err
	}
	var resp amadeusResponse
	if err := p.get(ctx, byCityPath, url.Values{"cityCode": {code}}, &resp); err != nil {
		return nil, err
	}
	data := resp.Data
	if len(data) > amadeusPageLimit {
		data = data[:amadeusPageLimit]
	}
	out := make([]*queries.HotelView, 0, len(data))
	for _, h := range data {
		out = append(out, h.toView())
	}
	return out, nil
}

func (p *AmadeusProvider) Get(ctx context.Context, id string) (*queries.HotelView, error) {
	var resp amadeusResponse
	if err := p.get(ctx, byHotelsPath, url.Values{"hotelIds": {id}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, ErrHotelNotInCatalog
	}
	return resp.Data[0].toView(), nil
}

func cityCode(location string) (string, error) {
	loc := strings.ToLower(strings.TrimSpace(location))
	if code, ok := cityCodes[loc]; ok {
		return code, nil
	}
	if len(loc) == 3 && loc != strings.ToLower(queries.SearchAll) {
		return strings.ToUpper(loc), nil
	}
	return "", errUnknownCity
}

func (h amadeusHotel) toView() *queries.HotelView {
	parts := append([]string{}, h.Address.Lines...)
	if h.Address.CityName != "" {
		parts = append(parts, h.Address.CityName)
	}
	if h.Address.CountryCode != "" {
		parts = append(parts, h.Address.CountryCode)
	}
	return &queries.HotelView{
		ID:   h.HotelID,
		Name: h.Name,
		Location: queries.LocationView{
			Address:   strings.Join(parts, ", "),
			Latitude:  h.GeoCode.Latitude,
			Longitude: h.GeoCode.Longitude,
		},
		Images:    []string{},
		Amenities: []string{},
		Source:    queries.SourceAmadeus,
	}
}

// get retries once on a network error, 429 or 5xx. Other 4xx fail immediately.
func (p *AmadeusProvider) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := p.rl.Wait(ctx); err != nil {
		return errs.Upstream(err, "amadeus rate limiter")
	}
	endpoint := p.baseURL + path + "?" + query.Encode()

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		retryable, wait, err := p.do(ctx, path, endpoint, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable || attempt == 1 {
			break
		}
		if wait == 0 {
			wait = p.backoff(attempt)
		}
		if !sleepCtx(ctx, wait) {
			return errs.Upstream(ctx.Err(), "amadeus request cancelled")
		}
	}
	return lastErr
}

func (p *AmadeusProvider) do(ctx context.Context, path, endpoint string, out any) (retryable bool, wait time.Duration, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, 0, errs.Upstream(err, "failed to build amadeus request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.hc.Do(req)
	if err != nil {
		metrics.ObserveExternal(amadeusService, path, 0, time.Since(start))
		if ctx.Err() != nil {
			return false, 0, errs.Upstream(ctx.Err(), "amadeus request cancelled")
		}
		return true, 0, errs.Upstream(err, "amadeus request failed")
	}
	defer resp.Body.Close()
	metrics.ObserveExternal(amadeusService, path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, 0, errs.Upstream(err, "failed to decode amadeus response")
		}
		return false, 0, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, 0, ErrHotelNotInCatalog
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return true, retryAfter(resp), errs.Upstream(fmt.Errorf("remote %d", resp.StatusCode), "amadeus unavailable")
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return false, 0, errs.Upstream(fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b))), "amadeus rejected request")
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After as seconds or an HTTP date. Zero means absent.
func retryAfter(resp *http.Response) time.Duration {
	h := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(h); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// jitteredBackoff doubles from 200ms with up to 50% jitter.
func jitteredBackoff(attempt int) time.Duration {
	base := time.Duration(1<<attempt) * 200 * time.Millisecond
	return base + time.Duration(rand.Float64()*0.5*float64(base))
}
