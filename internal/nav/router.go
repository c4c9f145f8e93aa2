// Package nav tracks the application's current route and enforces the
// guard table when moving between routes. It is the concrete Navigator the
// HTTP client redirects through on session expiry.
package nav

import (
	"strings"
	"sync"

	"github.com/lumera-core/lumera-cli/internal/auth"
	"github.com/lumera-core/lumera-cli/internal/log"
)

// rule binds a route prefix to a guard. Longer prefixes win, so a specific
// route can override the guard of its subtree.
type rule struct {
	prefix string
	guard  auth.Guard
}

// Router is a guarded location holder. Navigate records the requested route
// verbatim; Resolve runs the guard chain against a session snapshot and
// returns where the user actually lands.
type Router struct {
	mu       sync.Mutex
	location string

	rules  []rule
	logger *log.Logger
}

// maxRedirects bounds guard-driven redirect chains. Two hops cover every
// legitimate path (e.g. /app -> /login); anything longer is a guard table
// bug.
const maxRedirects = 4

// NewRouter creates a router starting at the landing route with the default
// guard table: login and register are anonymous-only, the app subtree and
// company onboarding require authentication, the landing route is open.
func NewRouter(logger *log.Logger) *Router {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Router{
		location: auth.RouteLanding,
		logger:   logger,
		rules: []rule{
			{prefix: auth.RouteLogin, guard: auth.RequireAnonymous},
			{prefix: auth.RouteRegister, guard: auth.RequireAnonymous},
			{prefix: auth.RouteApp, guard: auth.RequireAuthenticated},
			{prefix: auth.RouteOnboarding, guard: auth.RequireAuthenticated},
		},
	}
}

// Location returns the current route.
func (r *Router) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.location
}

// Navigate moves to the given route without consulting guards. The HTTP
// client calls this on session expiry, when the snapshot it would guard
// against is already stale.
func (r *Router) Navigate(route string) {
	r.mu.Lock()
	r.location = route
	r.mu.Unlock()
}

// guardFor returns the guard of the longest rule prefix matching route, or
// nil when the route is unguarded.
func (r *Router) guardFor(route string) auth.Guard {
	var best rule
	for _, ru := range r.rules {
		if !matchesPrefix(route, ru.prefix) {
			continue
		}
		if len(ru.prefix) > len(best.prefix) {
			best = ru
		}
	}
	return best.guard
}

// matchesPrefix reports whether route falls under prefix on path-segment
// boundaries, so /application does not match /app.
func matchesPrefix(route, prefix string) bool {
	if route == prefix {
		return true
	}
	return strings.HasPrefix(route, prefix+"/")
}

// Resolve applies the guard table to a navigation request and returns the
// route the user lands on. Redirects chain through the table until a guard
// allows entry; the chain is bounded to keep a misconfigured table from
// looping.
func (r *Router) Resolve(route string, snap auth.Snapshot) string {
	current := route
	for i := 0; i < maxRedirects; i++ {
		guard := r.guardFor(current)
		if guard == nil {
			r.Navigate(current)
			return current
		}

		d := guard(snap)
		if d.Allow {
			r.Navigate(current)
			return current
		}

		r.logger.Debug("route guarded",
			"route", current,
			"redirect_to", d.RedirectTo,
		)
		current = d.RedirectTo
	}

	// Guard table cycle. Fall back to the landing route, which is open.
	r.logger.Warn("guard redirect chain exceeded limit", "route", route)
	r.Navigate(auth.RouteLanding)
	return auth.RouteLanding
}
