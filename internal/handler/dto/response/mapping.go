package response

import (
	"log/slog"

	"hotel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// copyInto copies same-named fields. Nested and renamed members are mapped by the callers.
func copyInto[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		slog.Error("response mapping failed", "error", err.Error())
	}
	return &dst
}

type PaginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type ListResponse[T any] struct {
	Data       []T                `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

func fromPage[V any, R any](p *queries.Page[V], conv func(V) R) ListResponse[R] {
	data := make([]R, len(p.Data))
	for i, v := range p.Data {
		data[i] = conv(v)
	}
	return ListResponse[R]{
		Data:       data,
		Pagination: PaginationResponse(p.Pagination),
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
