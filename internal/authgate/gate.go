package authgate

import (
	"net/url"
	"strings"
	"time"

	"github.com/rickscode/SabaySell-sub001/internal/models"
)

const (
	// LoginPath is where unauthenticated visitors of protected pages land.
	LoginPath = "/login"
	// DefaultLanding is where authenticated visitors of auth-only pages land.
	DefaultLanding = "/"
	// RedirectParam carries the originally requested path through the login
	// redirect so the visitor returns where they started.
	RedirectParam = "redirectTo"
)

// protectedPrefixes require a live session.
var protectedPrefixes = []string{"/account", "/sell", "/boosts", "/messages"}

// authOnlyPrefixes are login/signup/verification pages that a signed-in
// visitor should not see again.
var authOnlyPrefixes = []string{"/login", "/signup", "/verify"}

// Decision is the gate's verdict for one request.
type Decision struct {
	Redirect bool
	Location string
}

// Pass is the verdict that lets the request through unchanged.
var Pass = Decision{}

// Decide classifies the path by prefix against the two static route lists
// and returns the redirect policy. It is a pure function of (path, session,
// now): no I/O, no server-runtime dependency.
func Decide(path string, sess *models.Session, now time.Time) Decision {
	switch {
	case hasAnyPrefix(path, protectedPrefixes) && !sess.Live(now):
		return Decision{
			Redirect: true,
			Location: LoginPath + "?" + RedirectParam + "=" + url.QueryEscape(path),
		}
	case hasAnyPrefix(path, authOnlyPrefixes) && sess.Live(now):
		return Decision{Redirect: true, Location: DefaultLanding}
	default:
		return Pass
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
