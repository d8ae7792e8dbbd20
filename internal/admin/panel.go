// Package admin holds the state behind the admin panel tabs: one
// independently fetched collection per tab, client-side filter predicates,
// and patch-then-refetch actions. There is no optimistic update and no
// cross-tab cache; data is correct after the refetch.
package admin

import (
	"context"

	"github.com/tourmate-app/tourmate-cli/internal/logging"
	"github.com/tourmate-app/tourmate-cli/internal/models"
)

// Backend is the slice of the API client the panel uses. *api.Client
// satisfies it; tests provide fakes.
type Backend interface {
	GuideApplications(ctx context.Context) ([]models.GuideApplication, error)
	SetApplicationStatus(ctx context.Context, id, status string) error
	Destinations(ctx context.Context) ([]models.Destination, error)
	CreateDestination(ctx context.Context, d models.Destination) error
	AdminTours(ctx context.Context) ([]models.Tour, error)
	CreateTour(ctx context.Context, t models.Tour) error
	AdminBookings(ctx context.Context) ([]models.Booking, error)
	SetBookingStatus(ctx context.Context, id, status string) error
	AdminUsers(ctx context.Context) ([]models.User, error)
	AdminPayments(ctx context.Context) ([]models.Payment, error)
	AdminReviews(ctx context.Context) ([]models.Review, error)
	SetReviewStatus(ctx context.Context, id, status string) error
	AdminAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, a models.Announcement) error
	AdminStats(ctx context.Context) (*models.AdminStats, error)
}

// Panel owns the fetched collections, one per tab.
type Panel struct {
	backend Backend
	log     logging.Logger

	Applications  []models.GuideApplication
	Destinations  []models.Destination
	Tours         []models.Tour
	Bookings      []models.Booking
	Users         []models.User
	Payments      []models.Payment
	Reviews       []models.Review
	Announcements []models.Announcement
	Stats         *models.AdminStats
}

func NewPanel(b Backend, log logging.Logger) *Panel {
	return &Panel{backend: b, log: log}
}

// LoadAll fetches every tab's collection. Each fetch is guarded on its own:
// a failure resets that one collection to empty and does not stop the rest
// from loading.
func (p *Panel) LoadAll(ctx context.Context) {
	p.LoadApplications(ctx)
	p.LoadDestinations(ctx)
	p.LoadTours(ctx)
	p.LoadBookings(ctx)
	p.LoadUsers(ctx)
	p.LoadPayments(ctx)
	p.LoadReviews(ctx)
	p.LoadAnnouncements(ctx)
	p.LoadStats(ctx)
}

func (p *Panel) LoadApplications(ctx context.Context) {
	items, err := p.backend.GuideApplications(ctx)
	if err != nil {
		p.log.Error(ctx, "loading guide applications failed", "error", err)
		p.Applications = []models.GuideApplication{}
		return
	}
	p.Applications = items
}

func (p *Panel) LoadDestinations(ctx context.Context) {
	items, err := p.backend.Destinations(ctx)
	if err != nil {
		p.log.Error(ctx, "loading destinations failed", "error", err)
		p.Destinations = []models.Destination{}
		return
	}
	p.Destinations = items
}

func (p *Panel) LoadTours(ctx context.Context) {
	items, err := p.backend.AdminTours(ctx)
	if err != nil {
		p.log.Error(ctx, "loading tours failed", "error", err)
		p.Tours = []models.Tour{}
		return
	}
	p.Tours = items
}

func (p *Panel) LoadBookings(ctx context.Context) {
	items, err := p.backend.AdminBookings(ctx)
	if err != nil {
		p.log.Error(ctx, "loading bookings failed", "error", err)
		p.Bookings = []models.Booking{}
		return
	}
	p.Bookings = items
}

func (p *Panel) LoadUsers(ctx context.Context) {
	items, err := p.backend.AdminUsers(ctx)
	if err != nil {
		p.log.Error(ctx, "loading users failed", "error", err)
		p.Users = []models.User{}
		return
	}
	p.Users = items
}

func (p *Panel) LoadPayments(ctx context.Context) {
	items, err := p.backend.AdminPayments(ctx)
	if err != nil {
		p.log.Error(ctx, "loading payments failed", "error", err)
		p.Payments = []models.Payment{}
		return
	}
	p.Payments = items
}

func (p *Panel) LoadReviews(ctx context.Context) {
	items, err := p.backend.AdminReviews(ctx)
	if err != nil {
		p.log.Error(ctx, "loading reviews failed", "error", err)
		p.Reviews = []models.Review{}
		return
	}
	p.Reviews = items
}

func (p *Panel) LoadAnnouncements(ctx context.Context) {
	items, err := p.backend.AdminAnnouncements(ctx)
	if err != nil {
		p.log.Error(ctx, "loading announcements failed", "error", err)
		p.Announcements = []models.Announcement{}
		return
	}
	p.Announcements = items
}

func (p *Panel) LoadStats(ctx context.Context) {
	stats, err := p.backend.AdminStats(ctx)
	if err != nil {
		p.log.Error(ctx, "loading stats failed", "error", err)
		p.Stats = nil
		return
	}
	p.Stats = stats
}
