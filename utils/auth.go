package utils

import (
	"slices"

	"github.com/DrunkMunki/Suggester/config"
)

// CheckAuth reports whether a user may run admin commands, either as a listed
// developer or through one of the configured admin roles.
func CheckAuth(userID string, roles []string) bool {
	authConfig := config.Cfg.Commands.Auth

	if slices.Contains(authConfig.Developers, userID) {
		return true
	}

	for _, role := range roles {
		if slices.Contains(authConfig.AdminRoles, role) {
			return true
		}
	}

	return false
}
