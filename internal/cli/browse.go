package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/tourmate-app/tourmate-cli/internal/admin"
	"github.com/tourmate-app/tourmate-cli/internal/api"
	"github.com/tourmate-app/tourmate-cli/internal/models"
)

// Destinations lists the catalog, optionally narrowed by a client-side
// search. The search never refetches; it filters what was already loaded.
func (a *App) Destinations(ctx context.Context) error {
	items, err := a.api.Destinations(ctx)
	if err != nil {
		printlnFn(api.Message(err))
		return err
	}

	query, err := getSimpleText(a.reader, "Search (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	items = admin.FilterByQuery(items, query, func(d models.Destination) []string {
		return []string{d.Name, d.Province, d.Category}
	})

	for _, d := range admin.FirstPage(items) {
		printlnFn(fmt.Sprintf("%-24s %-14s %-10s %.1f", d.Name, d.Province, d.Category, d.Rating))
	}
	printlnFn(len(items), "destination(s)")
	return nil
}

// Tours lists the public tour catalog.
func (a *App) Tours(ctx context.Context) error {
	items, err := a.api.Tours(ctx)
	if err != nil {
		printlnFn(api.Message(err))
		return err
	}

	for _, t := range admin.FirstPage(items) {
		printlnFn(fmt.Sprintf("%-28s %-16s %8.2f  %s", t.Name, t.Destination, t.Price, t.Duration))
	}
	printlnFn(len(items), "tour(s)")
	return nil
}

// Bookings shows the logged-in user's own bookings.
func (a *App) Bookings(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in to see your bookings.")
		return nil
	}

	items, err := a.api.MyBookings(ctx)
	if err != nil {
		printlnFn(api.Message(err))
		return err
	}

	for _, b := range items {
		printlnFn(fmt.Sprintf("%-28s %-12s %-10s %d people", b.TourName, b.Date, b.Status, b.People))
	}
	printlnFn(len(items), "booking(s)")
	return nil
}

// Profile prints the cached session user.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	u := a.current.User
	printlnFn("Name: ", u.Name)
	printlnFn("Email:", u.Email)
	printlnFn("Role: ", string(u.Role))
	return nil
}

// Dashboard is the guide landing view.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.isGuide() {
		printlnFn("The dashboard is only available to guides.")
		return nil
	}

	printlnFn("Guide dashboard:", a.current.User.Name)
	return a.Bookings(ctx)
}
