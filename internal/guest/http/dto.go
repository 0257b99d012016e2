package http

import (
	"github.com/alexx9363/tennis-courts-v1/internal/guest"
)

type CreateGuestRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateGuestRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
}

type GuestResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GuestTag is the compact guest reference embedded in other responses.
type GuestTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewGuestResponse(g *guest.Guest) GuestResponse {
	return GuestResponse{
		ID:   g.ID,
		Name: g.Name,
	}
}

func NewGuestResponses(guests []*guest.Guest) []GuestResponse {
	items := make([]GuestResponse, len(guests))
	for i, g := range guests {
		items[i] = NewGuestResponse(g)
	}
	return items
}
