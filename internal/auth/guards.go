package auth

// Decision is the outcome of a route guard: render, or redirect elsewhere.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Guard decides whether a snapshot may enter a route.
type Guard func(Snapshot) Decision

// RequireAuthenticated admits only authenticated sessions; everyone else is
// sent to the login route. Wraps the onboarding flow and the /app subtree.
func RequireAuthenticated(s Snapshot) Decision {
	if !s.IsAuthenticated {
		return Decision{RedirectTo: RouteLogin}
	}
	return Decision{Allow: true}
}

// RequireAnonymous admits only unauthenticated sessions. An authenticated
// user is sent to the app when they have a company, otherwise to company
// onboarding. Wraps the login and register routes.
func RequireAnonymous(s Snapshot) Decision {
	if s.IsAuthenticated {
		if s.HasCompany {
			return Decision{RedirectTo: RouteApp}
		}
		return Decision{RedirectTo: RouteOnboarding}
	}
	return Decision{Allow: true}
}
