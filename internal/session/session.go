// Package session resolves the signed-in user of a request. Authentication
// itself happens upstream in an auth proxy; this package only reads the
// identity it forwards.
package session

import (
	"net/http"
	"strings"
)

type UserIdentity struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
}

type Provider interface {
	CurrentUser(r *http.Request) (*UserIdentity, bool)
}

// HeaderProvider trusts identity headers set by the proxy in front of the
// service. DevUser, when set, is returned for requests without them.
type HeaderProvider struct {
	UserHeader  string
	NameHeader  string
	EmailHeader string
	DevUser     *UserIdentity
}

func (p *HeaderProvider) CurrentUser(r *http.Request) (*UserIdentity, bool) {
	uid := strings.TrimSpace(r.Header.Get(p.UserHeader))
	if uid == "" {
		if p.DevUser != nil {
			u := *p.DevUser
			return &u, true
		}
		return nil, false
	}

	u := &UserIdentity{UID: uid}
	if p.NameHeader != "" {
		u.DisplayName = strings.TrimSpace(r.Header.Get(p.NameHeader))
	}
	if p.EmailHeader != "" {
		u.Email = strings.TrimSpace(r.Header.Get(p.EmailHeader))
	}
	return u, true
}

// FirstName is the first space-separated word of a display name.
func FirstName(displayName string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(displayName), " ")
	return first
}
