//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	commandsmock "hotel-booking/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	hotels   *commandsmock.MockHotelRepository
	rooms    *commandsmock.MockRoomRepository
	hotelCmd commands.HotelCommands
	roomCmd  commands.RoomCommands
	admin    shared.Identity
}

func (s *CatalogCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.hotels = commandsmock.NewMockHotelRepository(s.mockCtrl)
	s.rooms = commandsmock.NewMockRoomRepository(s.mockCtrl)
	clk := clock.NewMockClock(fixedNow)
	s.hotelCmd = commands.NewHotelCommands(s.hotels, clk)
	s.roomCmd = commands.NewRoomCommands(s.rooms, clk)
	s.admin = shared.Identity{UserID: builder.NewUserBuilder().ID, Role: user.RoleAdmin}
}

func (s *CatalogCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogCommandsSuite(t *testing.T) {
	suite.Run(t, new(CatalogCommandsTestSuite))
}

func (s *CatalogCommandsTestSuite) TestHotelCreate() {
	h := builder.NewHotelBuilder()

	s.Run("success", func() {
		s.hotels.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ht *hotel.Hotel) (string, error) {
			s.Equal(h.BuildFields(), ht.Fields())
			s.Equal(fixedNow, ht.CreatedAt())
			return h.ID, nil
		})

		id, err := s.hotelCmd.Create(s.ctx, s.admin, h.BuildFields())

		s.Require().NoError(err)
		s.Equal(h.ID, id)
	})

	s.Run("error: regular users cannot manage hotels", func() {
		guest := shared.Identity{UserID: builder.NewUserBuilder().ID, Role: user.RoleUser}

		_, err := s.hotelCmd.Create(s.ctx, guest, h.BuildFields())

		s.ErrorIs(err, shared.ErrAdminOnly)
	})

	s.Run("error: validation", func() {
		_, err := s.hotelCmd.Create(s.ctx, s.admin, builder.NewHotelBuilder().WithRating(7).BuildFields())

		s.ErrorIs(err, hotel.ErrInvalidRating)
	})
}

func (s *CatalogCommandsTestSuite) TestHotelUpdate() {
	h := builder.NewHotelBuilder()

	s.Run("success: patch is applied and saved", func() {
		s.hotels.EXPECT().FindByID(gomock.Any(), h.ID).Return(h.BuildStored(), nil)
		s.hotels.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ht *hotel.Hotel) error {
			s.Equal(4.9, ht.Fields().Rating)
			s.Equal(h.Name, ht.Fields().Name)
			s.Equal(fixedNow, ht.UpdatedAt())
			return nil
		})

		s.NoError(s.hotelCmd.Update(s.ctx, s.admin, h.ID, hotel.Patch{Rating: ptr.To(4.9)}))
	})

	s.Run("error: invalid patch is not saved", func() {
		s.hotels.EXPECT().FindByID(gomock.Any(), h.ID).Return(h.BuildStored(), nil)

		err := s.hotelCmd.Update(s.ctx, s.admin, h.ID, hotel.Patch{Price: ptr.To(-1.0)})

		s.ErrorIs(err, hotel.ErrInvalidPrice)
	})

	s.Run("error: unknown hotel", func() {
		s.hotels.EXPECT().FindByID(gomock.Any(), h.ID).Return(nil, repoErr(infra.KindNotFound))

		s.ErrorIs(s.hotelCmd.Update(s.ctx, s.admin, h.ID, hotel.Patch{}), hotel.ErrHotelNotFound)
	})

	s.Run("error: malformed id", func() {
		s.ErrorIs(s.hotelCmd.Update(s.ctx, s.admin, "abc", hotel.Patch{}), hotel.ErrHotelNotFound)
	})
}

func (s *CatalogCommandsTestSuite) TestHotelDelete() {
	id := builder.NewHotelBuilder().ID

	s.Run("success", func() {
		s.hotels.EXPECT().Delete(gomock.Any(), id).Return(nil)

		s.NoError(s.hotelCmd.Delete(s.ctx, s.admin, id))
	})

	s.Run("error: unknown hotel", func() {
		s.hotels.EXPECT().Delete(gomock.Any(), id).Return(repoErr(infra.KindNotFound))

		s.ErrorIs(s.hotelCmd.Delete(s.ctx, s.admin, id), hotel.ErrHotelNotFound)
	})

	s.Run("error: database failure is passed through", func() {
		s.hotels.EXPECT().Delete(gomock.Any(), id).Return(repoErr(infra.KindDBFailure))

		err := s.hotelCmd.Delete(s.ctx, s.admin, id)

		s.True(infra.IsKind(err, infra.KindDBFailure))
	})
}

func (s *CatalogCommandsTestSuite) TestRoomLifecycle() {
	r := builder.NewRoomBuilder().WithHotel(builder.NewHotelBuilder().ID)

	s.Run("create", func() {
		s.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).Return(r.ID, nil)

		id, err := s.roomCmd.Create(s.ctx, s.admin, r.BuildFields())

		s.Require().NoError(err)
		s.Equal(r.ID, id)
	})

	s.Run("update marks the room unavailable", func() {
		s.rooms.EXPECT().FindByID(gomock.Any(), r.ID).Return(r.BuildStored(), nil)
		s.rooms.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rm *room.Room) error {
			s.False(rm.Fields().IsAvailable)
			return nil
		})

		s.NoError(s.roomCmd.Update(s.ctx, s.admin, r.ID, room.Patch{IsAvailable: ptr.To(false)}))
	})

	s.Run("delete of an unknown room", func() {
		s.rooms.EXPECT().Delete(gomock.Any(), r.ID).Return(repoErr(infra.KindNotFound))

		s.ErrorIs(s.roomCmd.Delete(s.ctx, s.admin, r.ID), room.ErrRoomNotFound)
	})

	s.Run("create with a bad hotel reference", func() {
		_, err := s.roomCmd.Create(s.ctx, s.admin, builder.NewRoomBuilder().WithHotel("hotel-1").BuildFields())

		s.ErrorIs(err, room.ErrInvalidHotelID)
	})
}
