package admin

import (
	"context"

	"github.com/tourmate-app/tourmate-cli/internal/models"
)

// Moderation and status actions. Each issues a single PATCH (or POST for
// create forms) and then refetches the affected collection wholesale.

// ApproveApplication marks a guide application approved.
func (p *Panel) ApproveApplication(ctx context.Context, id string) error {
	return p.setApplicationStatus(ctx, id, "approved")
}

// RejectApplication marks a guide application rejected.
func (p *Panel) RejectApplication(ctx context.Context, id string) error {
	return p.setApplicationStatus(ctx, id, "rejected")
}

func (p *Panel) setApplicationStatus(ctx context.Context, id, status string) error {
	if err := p.backend.SetApplicationStatus(ctx, id, status); err != nil {
		return err
	}
	p.LoadApplications(ctx)
	return nil
}

// UpdateBookingStatus sets a booking's status.
func (p *Panel) UpdateBookingStatus(ctx context.Context, id, status string) error {
	if err := p.backend.SetBookingStatus(ctx, id, status); err != nil {
		return err
	}
	p.LoadBookings(ctx)
	return nil
}

// ModerateReview publishes or hides a review.
func (p *Panel) ModerateReview(ctx context.Context, id, status string) error {
	if err := p.backend.SetReviewStatus(ctx, id, status); err != nil {
		return err
	}
	p.LoadReviews(ctx)
	return nil
}

// CreateDestination is write-only: the POST either lands or it doesn't, and
// the list becomes current again through the refetch.
func (p *Panel) CreateDestination(ctx context.Context, d models.Destination) error {
	if err := p.backend.CreateDestination(ctx, d); err != nil {
		return err
	}
	p.LoadDestinations(ctx)
	return nil
}

// CreateTour mirrors CreateDestination for the tours tab.
func (p *Panel) CreateTour(ctx context.Context, t models.Tour) error {
	if err := p.backend.CreateTour(ctx, t); err != nil {
		return err
	}
	p.LoadTours(ctx)
	return nil
}

// PublishAnnouncement posts a new announcement and refetches the tab.
func (p *Panel) PublishAnnouncement(ctx context.Context, a models.Announcement) error {
	if err := p.backend.CreateAnnouncement(ctx, a); err != nil {
		return err
	}
	p.LoadAnnouncements(ctx)
	return nil
}
