package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourmate-app/tourmate-cli/internal/logging"
	"github.com/tourmate-app/tourmate-cli/internal/models"
)

// fakeBackend serves canned collections and counts fetches per endpoint.
// Endpoints listed in fail return an error instead.
type fakeBackend struct {
	fetches map[string]int
	fail    map[string]bool
	patched []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{fetches: map[string]int{}, fail: map[string]bool{}}
}

func (f *fakeBackend) hit(name string) error {
	f.fetches[name]++
	if f.fail[name] {
		return errors.New(name + " unavailable")
	}
	return nil
}

func (f *fakeBackend) GuideApplications(ctx context.Context) ([]models.GuideApplication, error) {
	if err := f.hit("applications"); err != nil {
		return nil, err
	}
	return []models.GuideApplication{{ID: "a1", FirstName: "Nuwan", Email: "nuwan@example.com", Status: "pending"}}, nil
}

func (f *fakeBackend) SetApplicationStatus(ctx context.Context, id, status string) error {
	f.patched = append(f.patched, fmt.Sprintf("application:%s:%s", id, status))
	return nil
}

func (f *fakeBackend) Destinations(ctx context.Context) ([]models.Destination, error) {
	if err := f.hit("destinations"); err != nil {
		return nil, err
	}
	return []models.Destination{{ID: "d1", Name: "Ella", Province: "Uva", Category: "nature"}}, nil
}

func (f *fakeBackend) CreateDestination(ctx context.Context, d models.Destination) error {
	f.patched = append(f.patched, "destination:create")
	return nil
}

func (f *fakeBackend) AdminTours(ctx context.Context) ([]models.Tour, error) {
	if err := f.hit("tours"); err != nil {
		return nil, err
	}
	return []models.Tour{{ID: "t1", Name: "Nine Arches Walk"}}, nil
}

func (f *fakeBackend) CreateTour(ctx context.Context, t models.Tour) error {
	f.patched = append(f.patched, "tour:create")
	return nil
}

func (f *fakeBackend) AdminBookings(ctx context.Context) ([]models.Booking, error) {
	if err := f.hit("bookings"); err != nil {
		return nil, err
	}
	return []models.Booking{{ID: "b1", UserEmail: "amaya@example.com", Status: "pending"}}, nil
}

func (f *fakeBackend) SetBookingStatus(ctx context.Context, id, status string) error {
	f.patched = append(f.patched, fmt.Sprintf("booking:%s:%s", id, status))
	return nil
}

func (f *fakeBackend) AdminUsers(ctx context.Context) ([]models.User, error) {
	if err := f.hit("users"); err != nil {
		return nil, err
	}
	return []models.User{
		{ID: "u1", Name: "Amaya", Email: "amaya@example.com", Role: models.RoleTourist},
		{ID: "u2", Name: "Nuwan", Email: "nuwan@example.com", Role: models.RoleGuide},
	}, nil
}

func (f *fakeBackend) AdminPayments(ctx context.Context) ([]models.Payment, error) {
	if err := f.hit("payments"); err != nil {
		return nil, err
	}
	return []models.Payment{{ID: "p1", Amount: 120}}, nil
}

func (f *fakeBackend) AdminReviews(ctx context.Context) ([]models.Review, error) {
	if err := f.hit("reviews"); err != nil {
		return nil, err
	}
	return []models.Review{{ID: "r1", Rating: 5, Status: "pending"}}, nil
}

func (f *fakeBackend) SetReviewStatus(ctx context.Context, id, status string) error {
	f.patched = append(f.patched, fmt.Sprintf("review:%s:%s", id, status))
	return nil
}

func (f *fakeBackend) AdminAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	if err := f.hit("announcements"); err != nil {
		return nil, err
	}
	return []models.Announcement{{ID: "n1", Title: "Monsoon schedule"}}, nil
}

func (f *fakeBackend) CreateAnnouncement(ctx context.Context, a models.Announcement) error {
	f.patched = append(f.patched, "announcement:create")
	return nil
}

func (f *fakeBackend) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	if err := f.hit("stats"); err != nil {
		return nil, err
	}
	return &models.AdminStats{TotalUsers: 2, TotalBookings: 1}, nil
}

func TestLoadAllFailureIsolation(t *testing.T) {
	b := newFakeBackend()
	b.fail["payments"] = true

	p := NewPanel(b, logging.NewNop())
	p.LoadAll(context.Background())

	// The failed tab is reset to empty, not left stale and not nil.
	require.NotNil(t, p.Payments)
	assert.Empty(t, p.Payments)

	// Every other tab still loaded.
	assert.Len(t, p.Applications, 1)
	assert.Len(t, p.Bookings, 1)
	assert.Len(t, p.Users, 2)
	assert.Len(t, p.Reviews, 1)
	require.NotNil(t, p.Stats)
	assert.Equal(t, 2, p.Stats.TotalUsers)
}

func TestLoadFailureResetsStaleData(t *testing.T) {
	b := newFakeBackend()
	p := NewPanel(b, logging.NewNop())

	p.LoadBookings(context.Background())
	require.Len(t, p.Bookings, 1)

	b.fail["bookings"] = true
	p.LoadBookings(context.Background())
	require.NotNil(t, p.Bookings)
	assert.Empty(t, p.Bookings, "stale rows must not survive a failed refetch")
}

func TestActionsPatchThenRefetch(t *testing.T) {
	ctx := context.Background()
	b := newFakeBackend()
	p := NewPanel(b, logging.NewNop())

	require.NoError(t, p.ApproveApplication(ctx, "a1"))
	assert.Equal(t, []string{"application:a1:approved"}, b.patched)
	assert.Equal(t, 1, b.fetches["applications"], "action must trigger a full refetch")

	require.NoError(t, p.UpdateBookingStatus(ctx, "b1", "confirmed"))
	assert.Equal(t, 1, b.fetches["bookings"])

	require.NoError(t, p.ModerateReview(ctx, "r1", "published"))
	assert.Equal(t, 1, b.fetches["reviews"])

	require.NoError(t, p.CreateTour(ctx, models.Tour{Name: "Knuckles Trek"}))
	assert.Equal(t, 1, b.fetches["tours"])
}

func TestFilterByQuery(t *testing.T) {
	users := []models.User{
		{Name: "Amaya Jay", Email: "amaya@example.com"},
		{Name: "Nuwan Perera", Email: "nuwan@example.com"},
	}
	searchable := func(u models.User) []string { return []string{u.Name, u.Email} }

	got := FilterByQuery(users, "AMAYA", searchable)
	require.Len(t, got, 1)
	assert.Equal(t, "Amaya Jay", got[0].Name)

	got = FilterByQuery(users, "example.com", searchable)
	assert.Len(t, got, 2)

	got = FilterByQuery(users, "  ", searchable)
	assert.Len(t, got, 2, "blank query keeps everything")

	got = FilterByQuery(users, "zzz", searchable)
	assert.Empty(t, got)
}

func TestFilterByEquals(t *testing.T) {
	users := []models.User{
		{Name: "Amaya", Role: models.RoleTourist},
		{Name: "Nuwan", Role: models.RoleGuide},
	}

	got := FilterByEquals(users, "guide", func(u models.User) string { return string(u.Role) })
	require.Len(t, got, 1)
	assert.Equal(t, "Nuwan", got[0].Name)

	got = FilterByEquals(users, "", func(u models.User) string { return string(u.Role) })
	assert.Len(t, got, 2)
}

func TestFirstPage(t *testing.T) {
	rows := make([]int, 45)
	assert.Len(t, FirstPage(rows), DefaultPageSize)
	assert.Len(t, FirstPage(rows[:7]), 7)
}
