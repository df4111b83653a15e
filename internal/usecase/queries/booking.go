package queries

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/ident"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

const (
	StatsMonths      = 6
	StatsTopHotels   = 5
	StatsRecentLimit = 10
)

var ErrBookingAccess = errs.Forbidden("Not authorized to view this booking")

type BookingReadStore interface {
	FindByID(ctx context.Context, id string) (*BookingView, error)
	ListByUser(ctx context.Context, userID string) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	// Stats aggregates over every booking; monthly buckets start at since.
	Stats(ctx context.Context, since time.Time, topHotels, recent int) (*BookingStats, error)
}

type BookingQueries interface {
	Get(ctx context.Context, identity shared.Identity, id string) (*BookingView, error)
	ListMine(ctx context.Context, identity shared.Identity) ([]*BookingView, error)
	ListAll(ctx context.Context, identity shared.Identity) ([]*BookingView, error)
	Stats(ctx context.Context, identity shared.Identity) (*BookingStats, error)
}

type bookingQueriesImpl struct {
	store    BookingReadStore
	resolver RoomResolver
	clock    clock.Clock
}

func NewBookingQueries(store BookingReadStore, resolver RoomResolver, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, resolver: resolver, clock: clk}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, identity shared.Identity, id string) (*BookingView, error) {
	if err := shared.RequireUser(identity); err != nil {
		return nil, err
	}
	if !ident.Valid(id) {
		return nil, booking.ErrBookingNotFound
	}
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	if view.User.ID != identity.UserID && !identity.IsAdmin() {
		return nil, ErrBookingAccess
	}
	resolveRooms(ctx, q.resolver, []*BookingView{view})
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, identity shared.Identity) ([]*BookingView, error) {
	if err := shared.RequireUser(identity); err != nil {
		return nil, err
	}
	views, err := q.store.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*BookingView{}
	}
	resolveRooms(ctx, q.resolver, views)
	return views, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, identity shared.Identity) ([]*BookingView, error) {
	if err := shared.RequireAdmin(identity); err != nil {
		return nil, err
	}
	views, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*BookingView{}
	}
	resolveRooms(ctx, q.resolver, views)
	return views, nil
}

// Stats is recomputed on every call. Revenue includes cancelled bookings.
func (q *bookingQueriesImpl) Stats(ctx context.Context, identity shared.Identity) (*BookingStats, error) {
	if err := shared.RequireAdmin(identity); err != nil {
		return nil, err
	}
	now := q.clock.Now().UTC()
	since := clock.MonthStart(now, -(StatsMonths - 1))

	stats, err := q.store.Stats(ctx, since, StatsTopHotels, StatsRecentLimit)
	if err != nil {
		return nil, err
	}
	stats.BookingsByStatus = fillStatuses(stats.BookingsByStatus)
	stats.Monthly = fillMonths(since, StatsMonths, stats.Monthly)
	if stats.TopHotels == nil {
		stats.TopHotels = []HotelStat{}
	}
	if stats.RecentBookings == nil {
		stats.RecentBookings = []*BookingView{}
	}
	return stats, nil
}

func fillStatuses(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(booking.Statuses))
	for _, s := range booking.Statuses {
		out[s.String()] = 0
	}
	for k, v := range in {
		out[k] += v
	}
	return out
}

// fillMonths returns exactly n buckets starting at since, oldest first, zero-filled.
func fillMonths(since time.Time, n int, in []MonthlyStat) []MonthlyStat {
	byMonth := make(map[string]MonthlyStat, len(in))
	for _, m := range in {
		byMonth[m.Month] = m
	}
	out := make([]MonthlyStat, 0, n)
	for i := 0; i < n; i++ {
		key := clock.MonthStart(since, i).Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = MonthlyStat{Month: key}
		}
		out = append(out, m)
	}
	return out
}
