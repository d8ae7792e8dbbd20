package api

import (
	"context"

	"github.com/tourmate-app/tourmate-cli/internal/models"
)

// MyBookings fetches the authenticated user's own bookings.
func (c *Client) MyBookings(ctx context.Context) ([]models.Booking, error) {
	env, err := c.getJSON(ctx, "/bookings")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Booking](env)
}
