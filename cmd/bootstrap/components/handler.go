package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewPaymentHandler,
		api.NewTransactionHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			booking *api.BookingHandler,
			hotel *api.HotelHandler,
			room *api.RoomHandler,
			payment *api.PaymentHandler,
			transaction *api.TransactionHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Booking:     booking,
				Hotel:       hotel,
				Room:        room,
				Payment:     payment,
				Transaction: transaction,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
