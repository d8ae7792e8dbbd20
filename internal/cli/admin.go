package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tourmate-app/tourmate-cli/internal/admin"
	"github.com/tourmate-app/tourmate-cli/internal/api"
	"github.com/tourmate-app/tourmate-cli/internal/models"
)

const adminTabs = "applications destinations tours bookings users payments reviews announcements stats"

func isAdminTab(name string) bool {
	for _, t := range strings.Fields(adminTabs) {
		if t == name {
			return true
		}
	}
	return false
}

// tabFilter is the client-side narrowing state of the current tab: a
// substring search plus at most one exact field match (role, status,
// category). Both reset on tab switch.
type tabFilter struct {
	query string
	field string
	value string
}

// Admin runs the role-gated panel loop. Every tab's collection is fetched
// once on entry; search and filter narrow client-side, actions patch and
// refetch.
func (a *App) Admin(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("The admin area requires the admin role.")
		return nil
	}

	a.panel.LoadAll(ctx)
	printlnFn("Admin panel. Tabs:", adminTabs)
	printlnFn("Commands: <tab>, search <text>, filter <field> <value>, approve/reject <id>, book <id> <status>, review <id> <status>, create, refresh, back")

	tab := "applications"
	f := tabFilter{}
	a.renderTab(tab, f)

	for {
		line, err := getSimpleText(a.reader, fmt.Sprintf("admin/%s", tab), os.Stdout)
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "back":
			return nil

		case "search":
			f.query = strings.Join(parts[1:], " ")
			a.renderTab(tab, f)

		case "filter":
			switch {
			case len(parts) == 1:
				f.field, f.value = "", ""
			case len(parts) >= 3:
				f.field, f.value = parts[1], strings.Join(parts[2:], " ")
			default:
				printlnFn("Usage: filter <field> <value>, or bare filter to clear")
				continue
			}
			a.renderTab(tab, f)

		case "refresh":
			a.panel.LoadAll(ctx)
			a.renderTab(tab, f)

		case "approve", "reject":
			if len(parts) < 2 {
				printlnFn("Usage:", cmd, "<application-id>")
				continue
			}
			a.runAction(ctx, func() error {
				if cmd == "approve" {
					return a.panel.ApproveApplication(ctx, parts[1])
				}
				return a.panel.RejectApplication(ctx, parts[1])
			})
			a.renderTab("applications", f)

		case "book":
			if len(parts) < 3 {
				printlnFn("Usage: book <booking-id> <status>")
				continue
			}
			a.runAction(ctx, func() error { return a.panel.UpdateBookingStatus(ctx, parts[1], parts[2]) })
			a.renderTab("bookings", f)

		case "review":
			if len(parts) < 3 {
				printlnFn("Usage: review <review-id> <status>")
				continue
			}
			a.runAction(ctx, func() error { return a.panel.ModerateReview(ctx, parts[1], parts[2]) })
			a.renderTab("reviews", f)

		case "create":
			a.createInTab(ctx, tab)
			a.renderTab(tab, f)

		default:
			if isAdminTab(cmd) {
				tab = cmd
				f = tabFilter{}
				a.renderTab(tab, f)
				continue
			}
			printlnFn("Unknown command:", cmd)
		}
	}
}

// runAction surfaces a failed admin action as a blocking message; the data
// on screen stays whatever the last refetch produced.
func (a *App) runAction(ctx context.Context, fn func() error) {
	if err := fn(); err != nil {
		printlnFn("ALERT:", api.Message(err))
	}
}

// withEquals applies the tab's exact-match filter when its field is one the
// tab supports; an unsupported field leaves the rows as-is, like an absent
// dropdown in the tab's toolbar.
func withEquals[T any](rows []T, f tabFilter, keys map[string]func(T) string) []T {
	key, ok := keys[f.field]
	if !ok {
		return rows
	}
	return admin.FilterByEquals(rows, f.value, key)
}

func (a *App) renderTab(tab string, f tabFilter) {
	p := a.panel
	switch tab {
	case "applications":
		rows := admin.FilterByQuery(p.Applications, f.query, func(g models.GuideApplication) []string {
			return []string{g.FirstName + " " + g.LastName, g.Email}
		})
		rows = withEquals(rows, f, map[string]func(models.GuideApplication) string{
			"status": func(g models.GuideApplication) string { return g.Status },
		})
		for _, g := range admin.FirstPage(rows) {
			printlnFn(fmt.Sprintf("%-10s %-24s %-28s %s", g.ID, g.FirstName+" "+g.LastName, g.Email, g.Status))
		}
		printlnFn(len(rows), "application(s)")

	case "destinations":
		rows := admin.FilterByQuery(p.Destinations, f.query, func(d models.Destination) []string {
			return []string{d.Name, d.Province}
		})
		rows = withEquals(rows, f, map[string]func(models.Destination) string{
			"category": func(d models.Destination) string { return d.Category },
			"province": func(d models.Destination) string { return d.Province },
		})
		for _, d := range admin.FirstPage(rows) {
			printlnFn(fmt.Sprintf("%-10s %-24s %-14s %s", d.ID, d.Name, d.Province, d.Category))
		}
		printlnFn(len(rows), "destination(s)")

	case "tours":
		rows := admin.FilterByQuery(p.Tours, f.query, func(t models.Tour) []string {
			return []string{t.Name, t.Destination}
		})
		rows = withEquals(rows, f, map[string]func(models.Tour) string{
			"category":    func(t models.Tour) string { return t.Category },
			"destination": func(t models.Tour) string { return t.Destination },
		})
		for _, t := range admin.FirstPage(rows) {
			printlnFn(fmt.Sprintf("%-10s %-28s %8.2f %s", t.ID, t.Name, t.Price, t.Duration))
		}
		printlnFn(len(rows), "tour(s)")

	case "bookings":
		rows := admin.FilterByQuery(p.Bookings, f.query, func(b models.Booking) []string {
			return []string{b.UserName, b.UserEmail, b.TourName}
		})
		rows = withEquals(rows, f, map[string]func(models.Booking) string{
			"status": func(b models.Booking) string { return b.Status },
		})
		for _, b := range admin.FirstPage(rows) {
			printlnFn(fmt.Sprintf("%-10s %-24s %-28s %-12s %s", b.ID, b.UserEmail, b.TourName, b.Date, b.Status))
		}
		printlnFn(len(rows), "booking(s)")

	case "users":
		rows := admin.FilterByQuery(p.Users, f.query, func(u models.User) []string {
			return []string{u.Name, u.Email}
		})
		rows = withEquals(rows, f, map[string]func(models.User) string{
			"role": func(u models.User) string { return string(u.Role) },
		})
		for _, u := range admin.FirstPage(rows) {
			printlnFn(fmt.Sprintf("%-10s %-24s %-28s %s", u.ID, u.Name, u.Email, u.Role))
		}
		printlnFn(len(rows), "user(s)")

	case "payments":
		rows := admin.FilterByQuery(p.Payments, f.query, func(pm models.Payment) []string {
			return []string{pm.UserEmail, pm.BookingID}
		})
		rows = withEquals(rows, f, map[string]func(models.Payment) string{
			"status": func(pm models.Payment) string { return pm.Status },
			"method": func(pm models.Payment) string { return pm.Method },
		})
		for _, pm := range admin.FirstPage(rows) {
			printlnFn(fmt.Sprintf("%-10s %-28s %10.2f %-8s %s", pm.ID, pm.UserEmail, pm.Amount, pm.Method, pm.Status))
		}
		printlnFn(len(rows), "payment(s)")

	case "reviews":
		rows := admin.FilterByQuery(p.Reviews, f.query, func(r models.Review) []string {
			return []string{r.UserName, r.TourName}
		})
		rows = withEquals(rows, f, map[string]func(models.Review) string{
			"status": func(r models.Review) string { return r.Status },
		})
		for _, r := range admin.FirstPage(rows) {
			printlnFn(fmt.Sprintf("%-10s %-24s %d/5 %-10s %s", r.ID, r.TourName, r.Rating, r.Status, r.Comment))
		}
		printlnFn(len(rows), "review(s)")

	case "announcements":
		for _, n := range admin.FirstPage(p.Announcements) {
			printlnFn(fmt.Sprintf("%-10s %-32s %s", n.ID, n.Title, n.CreatedAt.Format("2006-01-02")))
		}
		printlnFn(len(p.Announcements), "announcement(s)")

	case "stats":
		if p.Stats == nil {
			printlnFn("Stats unavailable.")
			return
		}
		printlnFn("Users:               ", p.Stats.TotalUsers)
		printlnFn("Bookings:            ", p.Stats.TotalBookings)
		printlnFn("Revenue:             ", p.Stats.TotalRevenue)
		printlnFn("Pending applications:", p.Stats.PendingApplications)
		printlnFn("Pending reviews:     ", p.Stats.PendingReviews)
	}
}

// createInTab runs the write-only create form for the current tab. An image
// is uploaded first when given; the new entity appears after the refetch.
func (a *App) createInTab(ctx context.Context, tab string) {
	switch tab {
	case "destinations":
		d := models.Destination{}
		var err error
		if d.Name, err = getSimpleText(a.reader, "Destination name", os.Stdout); err != nil {
			return
		}
		if d.Province, err = getSimpleText(a.reader, "Province", os.Stdout); err != nil {
			return
		}
		if d.Category, err = getSimpleText(a.reader, "Category", os.Stdout); err != nil {
			return
		}
		if d.Description, err = GetMultiline(a.reader, "Description", os.Stdout); err != nil {
			return
		}
		if url := a.uploadImagePrompt(ctx); url != "" {
			d.Images = []string{url}
		}
		a.runAction(ctx, func() error { return a.panel.CreateDestination(ctx, d) })

	case "tours":
		t := models.Tour{}
		var err error
		if t.Name, err = getSimpleText(a.reader, "Tour name", os.Stdout); err != nil {
			return
		}
		if t.Destination, err = getSimpleText(a.reader, "Destination", os.Stdout); err != nil {
			return
		}
		if t.Duration, err = getSimpleText(a.reader, "Duration", os.Stdout); err != nil {
			return
		}
		price, err := getSimpleText(a.reader, "Price", os.Stdout)
		if err != nil {
			return
		}
		if t.Price, err = strconv.ParseFloat(strings.TrimSpace(price), 64); err != nil {
			printlnFn("Price must be a number, e.g. 120 or 99.50.")
			return
		}
		if url := a.uploadImagePrompt(ctx); url != "" {
			t.Images = []string{url}
		}
		a.runAction(ctx, func() error { return a.panel.CreateTour(ctx, t) })

	case "announcements":
		n := models.Announcement{}
		var err error
		if n.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
			return
		}
		if n.Body, err = GetMultiline(a.reader, "Body", os.Stdout); err != nil {
			return
		}
		a.runAction(ctx, func() error { return a.panel.PublishAnnouncement(ctx, n) })

	default:
		printlnFn("Nothing to create in this tab.")
	}
}

// uploadImagePrompt optionally uploads one image and returns its location,
// or "" when skipped or failed.
func (a *App) uploadImagePrompt(ctx context.Context) string {
	f, err := GetFile(a.reader, "Image", os.Stdout)
	if err != nil {
		printlnFn("Could not read file:", err.Error())
		return ""
	}
	if f == nil {
		return ""
	}

	url, err := a.api.UploadImage(ctx, f.Name, bytes.NewReader(f.Content))
	if err != nil {
		printlnFn("ALERT:", api.Message(err))
		return ""
	}
	return url
}
