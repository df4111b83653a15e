//go:build unit

package request_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr string
	}{
		{name: "calendar date", raw: `"2025-04-10"`, want: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 with offset is normalized to UTC", raw: `"2025-04-10T14:00:00+05:30"`, want: time.Date(2025, 4, 10, 8, 30, 0, 0, time.UTC)},
		{name: "fractional seconds", raw: `"2025-04-10T00:00:00.000Z"`, want: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)},
		{name: "null leaves zero", raw: `null`},
		{name: "blank leaves zero", raw: `"  "`},
		{name: "unparseable", raw: `"10/04/2025"`, wantErr: `invalid date "10/04/2025"`},
		{name: "number", raw: `20250410`, wantErr: "dates must be strings"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d request.Date
			err := json.Unmarshal([]byte(tc.raw), &d)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(d.Time), "got %s", d.Time)
		})
	}
}

func TestRoomRefInput(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		wantKind string
		wantID   string
		wantErr  bool
	}{
		{name: "bare string is an external room", raw: `"2"`, wantKind: "external", wantID: "2"},
		{name: "object with kind", raw: `{"kind":"internal","id":"65f0c0ffee0000000000abcd"}`, wantKind: "internal", wantID: "65f0c0ffee0000000000abcd"},
		{name: "object without kind", raw: `{"id":"abc"}`, wantKind: "", wantID: "abc"},
		{name: "number", raw: `42`, wantErr: true},
		{name: "array", raw: `["1"]`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ref request.RoomRefInput
			err := json.Unmarshal([]byte(tc.raw), &ref)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, ref.Kind)
			assert.Equal(t, tc.wantID, ref.ID)
		})
	}
}

func TestCreateBookingRequestToInput(t *testing.T) {
	raw := `{
		"room": "3",
		"hotelName": "Sea Breeze",
		"checkInDate": "2025-05-01",
		"checkOutDate": "2025-05-04T00:00:00Z",
		"totalPrice": 360,
		"paymentMethod": "razorpay"
	}`

	var req request.CreateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	in, err := req.ToInput()
	require.NoError(t, err)
	assert.Equal(t, "external", in.RoomKind)
	assert.Equal(t, "3", in.RoomID)
	assert.Equal(t, "Sea Breeze", in.HotelName)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), in.CheckIn)
	assert.Equal(t, time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC), in.CheckOut)
	assert.InDelta(t, 360, in.TotalPrice, 0.001)
	assert.Equal(t, "razorpay", in.PaymentMethod)

	t.Run("zero price is kept", func(t *testing.T) {
		var req request.CreateBookingRequest
		require.NoError(t, json.Unmarshal([]byte(`{"room":"3","hotelName":"h","totalPrice":0}`), &req))
		in, err := req.ToInput()
		require.NoError(t, err)
		assert.Zero(t, in.TotalPrice)
	})

	t.Run("missing totalPrice is rejected", func(t *testing.T) {
		var req request.CreateBookingRequest
		require.NoError(t, json.Unmarshal([]byte(`{"room":"1","hotelName":"Taj","checkInDate":"2025-03-10","checkOutDate":"2025-03-12"}`), &req))
		_, err := req.ToInput()
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, "totalPrice is required", errs.Message(err))
	})
}

func TestCreateRequestsRequireNumbers(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		convert func(raw []byte) error
		want    string
	}{
		{
			name: "hotel without price",
			raw:  `{"name":"n","description":"d","location":{"address":"a","latitude":1,"longitude":2}}`,
			convert: func(raw []byte) error {
				var req request.CreateHotelRequest
				require.NoError(t, json.Unmarshal(raw, &req))
				_, err := req.ToFields()
				return err
			},
			want: "price is required",
		},
		{
			name: "hotel without latitude",
			raw:  `{"name":"n","description":"d","price":10,"location":{"address":"a","longitude":2}}`,
			convert: func(raw []byte) error {
				var req request.CreateHotelRequest
				require.NoError(t, json.Unmarshal(raw, &req))
				_, err := req.ToFields()
				return err
			},
			want: "location.latitude is required",
		},
		{
			name: "hotel without longitude",
			raw:  `{"name":"n","description":"d","price":10,"location":{"address":"a","lat":1}}`,
			convert: func(raw []byte) error {
				var req request.CreateHotelRequest
				require.NoError(t, json.Unmarshal(raw, &req))
				_, err := req.ToFields()
				return err
			},
			want: "location.longitude is required",
		},
		{
			name: "hotel update with incomplete location",
			raw:  `{"location":{"address":"a","latitude":1}}`,
			convert: func(raw []byte) error {
				var req request.UpdateHotelRequest
				require.NoError(t, json.Unmarshal(raw, &req))
				_, err := req.ToPatch()
				return err
			},
			want: "location.longitude is required",
		},
		{
			name: "room without pricePerNight",
			raw:  `{"hotel":"65f0c0ffee0000000000abcd","name":"n","description":"d","capacity":2}`,
			convert: func(raw []byte) error {
				var req request.CreateRoomRequest
				require.NoError(t, json.Unmarshal(raw, &req))
				_, err := req.ToFields()
				return err
			},
			want: "pricePerNight is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.convert([]byte(tc.raw))
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation))
			assert.Equal(t, tc.want, errs.Message(err))
		})
	}
}

func TestLocationInput(t *testing.T) {
	t.Run("long keys", func(t *testing.T) {
		var l request.LocationInput
		require.NoError(t, json.Unmarshal([]byte(`{"address":"Goa","latitude":15.3,"longitude":74.1}`), &l))
		loc, err := l.ToDomain()
		require.NoError(t, err)
		assert.Equal(t, "Goa", loc.Address)
		assert.InDelta(t, 15.3, loc.Latitude, 1e-9)
		assert.InDelta(t, 74.1, loc.Longitude, 1e-9)
	})

	t.Run("short keys", func(t *testing.T) {
		var l request.LocationInput
		require.NoError(t, json.Unmarshal([]byte(`{"address":"Goa","lat":15.3,"lng":74.1}`), &l))
		loc, err := l.ToDomain()
		require.NoError(t, err)
		assert.InDelta(t, 15.3, loc.Latitude, 1e-9)
		assert.InDelta(t, 74.1, loc.Longitude, 1e-9)
	})

	t.Run("long keys win", func(t *testing.T) {
		l := request.LocationInput{Latitude: ptr.To(1.0), Lat: ptr.To(2.0), Lng: ptr.To(3.0)}
		loc, err := l.ToDomain()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, loc.Latitude, 1e-9)
		assert.InDelta(t, 3.0, loc.Longitude, 1e-9)
	})
}

func TestUpdateHotelRequestToPatch(t *testing.T) {
	var req request.UpdateHotelRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price":120,"location":{"address":"Pune","lat":18.5,"lng":73.8}}`), &req))

	p, err := req.ToPatch()
	require.NoError(t, err)
	assert.Nil(t, p.Name)
	require.NotNil(t, p.Price)
	assert.InDelta(t, 120, *p.Price, 0.001)
	require.NotNil(t, p.Location)
	assert.Equal(t, "Pune", p.Location.Address)
	assert.InDelta(t, 18.5, p.Location.Latitude, 1e-9)
}

func TestHotelListQueryToFilter(t *testing.T) {
	t.Run("maps every field", func(t *testing.T) {
		q := request.HotelListQuery{
			ListQuery: request.ListQuery{
				Page:      ptr.To(2),
				Limit:     ptr.To(20),
				SortBy:    " price ",
				Order:     "ASC",
				Search:    "goa",
				Amenities: "wifi, pool,,",
			},
			MinPrice:  ptr.To(50.0),
			MinRating: ptr.To(4.0),
		}

		f, err := q.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, queries.ListParams{
			Page:      2,
			Limit:     20,
			SortBy:    "price",
			Order:     queries.Asc,
			Search:    "goa",
			Amenities: []string{"wifi", "pool"},
		}, f.ListParams)
		assert.Equal(t, ptr.To(50.0), f.MinPrice)
		assert.Nil(t, f.MaxPrice)
		assert.Equal(t, ptr.To(4.0), f.MinRating)
	})

	cases := []struct {
		name    string
		query   request.ListQuery
		wantErr string
	}{
		{name: "page zero", query: request.ListQuery{Page: ptr.To(0)}, wantErr: "page must be at least 1"},
		{name: "limit over max", query: request.ListQuery{Limit: ptr.To(queries.MaxLimit + 1)}, wantErr: "limit must be between 1 and 100"},
		{name: "limit zero", query: request.ListQuery{Limit: ptr.To(0)}, wantErr: "limit must be between 1 and 100"},
		{name: "bad order", query: request.ListQuery{Order: "sideways"}, wantErr: "order must be asc or desc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := request.HotelListQuery{ListQuery: tc.query}.ToFilter()
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRoomListQueryToFilter(t *testing.T) {
	q := request.RoomListQuery{
		MinCapacity: ptr.To(2),
		Available:   ptr.To(true),
		Hotel:       " 65f0c0ffee0000000000abcd ",
	}

	f, err := q.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, queries.Desc, f.Order)
	assert.Nil(t, f.Amenities)
	assert.Equal(t, ptr.To(2), f.MinCapacity)
	assert.Equal(t, ptr.To(true), f.Available)
	assert.Equal(t, "65f0c0ffee0000000000abcd", f.HotelID)
}
