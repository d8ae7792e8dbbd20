package api

import (
	"context"
	"fmt"

	"github.com/tourmate-app/tourmate-cli/internal/models"
)

// The admin endpoints below back the panel tabs. Each returns the whole
// collection; filtering and the display slice are client-side concerns.

func (c *Client) AdminBookings(ctx context.Context) ([]models.Booking, error) {
	env, err := c.getJSON(ctx, "/admin/bookings")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Booking](env)
}

func (c *Client) SetBookingStatus(ctx context.Context, id, status string) error {
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	_, err := c.patchJSON(ctx, fmt.Sprintf("/admin/bookings/%s", id), payload)
	return err
}

func (c *Client) AdminUsers(ctx context.Context) ([]models.User, error) {
	env, err := c.getJSON(ctx, "/admin/users")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.User](env)
}

func (c *Client) AdminPayments(ctx context.Context) ([]models.Payment, error) {
	env, err := c.getJSON(ctx, "/admin/payments")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Payment](env)
}

func (c *Client) AdminReviews(ctx context.Context) ([]models.Review, error) {
	env, err := c.getJSON(ctx, "/admin/reviews")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Review](env)
}

func (c *Client) SetReviewStatus(ctx context.Context, id, status string) error {
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	_, err := c.patchJSON(ctx, fmt.Sprintf("/admin/reviews/%s", id), payload)
	return err
}

func (c *Client) AdminTours(ctx context.Context) ([]models.Tour, error) {
	env, err := c.getJSON(ctx, "/admin/tours")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Tour](env)
}

// CreateTour is write-only; the tours tab refetches after it succeeds.
func (c *Client) CreateTour(ctx context.Context, t models.Tour) error {
	_, err := c.postJSON(ctx, "/admin/tours", t)
	return err
}

func (c *Client) AdminAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	env, err := c.getJSON(ctx, "/admin/announcements")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Announcement](env)
}

func (c *Client) CreateAnnouncement(ctx context.Context, a models.Announcement) error {
	_, err := c.postJSON(ctx, "/admin/announcements", a)
	return err
}

func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	env, err := c.getJSON(ctx, "/admin/stats")
	if err != nil {
		return nil, err
	}
	s, err := decodeData[models.AdminStats](env)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
