// Package models defines the entity projections exchanged with the backend.
// All of them are shaped by the API; the client never derives or persists
// them beyond the lifetime of a view, except for the Session.
package models

import "time"

// Role is the authorization role carried inside a session user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleGuide   Role = "guide"
	RoleTourist Role = "user"
)

// User is the profile cached alongside the session token.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session is the client-held proof of authentication: an opaque bearer
// token plus the cached user profile. Token and User are always stored
// and cleared together.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Destination is a read-only catalog projection.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Province    string   `json:"province"`
	Category    string   `json:"category"`
	Highlights  []string `json:"highlights,omitempty"`
	Images      []string `json:"images,omitempty"`
	Rating      float64  `json:"rating"`
}

// Tour is a bookable offering attached to a destination.
type Tour struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Destination string   `json:"destination"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	GroupSize   int      `json:"groupSize"`
	Highlights  []string `json:"highlights,omitempty"`
	Images      []string `json:"images,omitempty"`
	Rating      float64  `json:"rating"`
}

// Booking is an admin-view projection of a tour booking.
type Booking struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	TourName  string    `json:"tourName"`
	Date      string    `json:"date"`
	People    int       `json:"people"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Payment is an admin-view projection of a captured payment.
type Payment struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	UserEmail string    `json:"userEmail"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	PaidAt    time.Time `json:"paidAt"`
}

// Review is an admin-view projection of a tour review.
type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	TourName string `json:"tourName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Status   string `json:"status"`
}

// Announcement is a site-wide notice managed from the admin panel.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// GuideApplication is the moderation-view projection of a submitted
// guide registration.
type GuideApplication struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Languages   []string  `json:"languages,omitempty"`
	Regions     []string  `json:"preferredRegions,omitempty"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// AdminStats is the aggregate card data shown on the admin dashboard.
type AdminStats struct {
	TotalUsers          int     `json:"totalUsers"`
	TotalBookings       int     `json:"totalBookings"`
	TotalRevenue        float64 `json:"totalRevenue"`
	PendingApplications int     `json:"pendingApplications"`
	PendingReviews      int     `json:"pendingReviews"`
}
