package middleware

import (
	"strings"

	"github.com/abok-cymk/ai-democratizer/domain"
)

// Authorization guards are pure decision functions: no I/O, no mutation.
// They read the request context and return the acting principal or a
// classified failure.

// RequireAuth asserts the context is authenticated.
func RequireAuth(rc *domain.RequestContext) (*domain.User, error) {
	if rc == nil || !rc.Authenticated || rc.Principal == nil {
		return nil, domain.NewAuthentication("Authentication required. Please log in to continue.")
	}
	return rc.Principal, nil
}

// RequireRole asserts the principal holds one of the allowed roles. An
// anonymous caller fails with Authentication, an authenticated caller outside
// the set with Authorization.
func RequireRole(rc *domain.RequestContext, roles ...domain.Role) (*domain.User, error) {
	user, err := RequireAuth(rc)
	if err != nil {
		return nil, err
	}

	for _, r := range roles {
		if user.Role == r {
			return user, nil
		}
	}

	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return nil, domain.NewAuthorization("Insufficient permissions. Required role: " + strings.Join(names, " or "))
}

// RequireOwnershipOrRole asserts the principal owns the target resource or
// holds one of the admin roles. An empty role set defaults to the two
// highest-privilege roles.
func RequireOwnershipOrRole(rc *domain.RequestContext, resourceOwnerID string, roles ...domain.Role) (*domain.User, error) {
	user, err := RequireAuth(rc)
	if err != nil {
		return nil, err
	}

	if user.ID == resourceOwnerID {
		return user, nil
	}

	if len(roles) == 0 {
		roles = domain.AdminRoles
	}
	for _, r := range roles {
		if user.Role == r {
			return user, nil
		}
	}

	return nil, domain.NewAuthorization("You can only access your own resources or need higher permissions.")
}
