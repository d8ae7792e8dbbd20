package session

import "github.com/tourmate-app/tourmate-cli/internal/models"

// Routes the client navigates to after a successful login.
const (
	RouteAdmin          = "/admin"
	RouteGuideDashboard = "/guide/dashboard"
)

// Redirect describes where the client goes after authentication: either a
// concrete path, or a reload of whatever route is current.
type Redirect struct {
	Path   string
	Reload bool
}

// RedirectFor resolves the post-login destination from the user's role:
// admins land in the admin area, guides on the guide dashboard, everyone
// else reloads the current route.
func RedirectFor(role models.Role) Redirect {
	switch role {
	case models.RoleAdmin:
		return Redirect{Path: RouteAdmin}
	case models.RoleGuide:
		return Redirect{Path: RouteGuideDashboard}
	default:
		return Redirect{Reload: true}
	}
}
