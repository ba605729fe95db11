package authentication

import (
	"encoding/base64"
	"strings"
)

// IBasicAuthService validates HTTP Basic credentials for the two access
// tiers: staff (order mutations) and admin (menu management, destructive ops).
type IBasicAuthService interface {
	ValidateStaff(username, password string) bool
	ValidateAdmin(username, password string) bool
	DecodeFromHeader(auth string) (string, string)
}

type BasicAuthConfig struct {
	StaffUsername string
	StaffPassword string
	AdminUsername string
	AdminPassword string
}

type basicAuth struct {
	staffUsername string
	staffPassword string
	adminUsername string
	adminPassword string
}

func NewBasicAuthService(config *BasicAuthConfig) IBasicAuthService {
	return &basicAuth{
		staffUsername: config.StaffUsername,
		staffPassword: config.StaffPassword,
		adminUsername: config.AdminUsername,
		adminPassword: config.AdminPassword,
	}
}

// ValidateStaff accepts staff credentials. Admin credentials are accepted
// too, so admins can perform staff operations without switching accounts.
func (b *basicAuth) ValidateStaff(username, password string) bool {
	if b.staffUsername == username && b.staffPassword == password {
		return true
	}
	return b.ValidateAdmin(username, password)
}

func (b *basicAuth) ValidateAdmin(username, password string) bool {
	return b.adminUsername == username && b.adminPassword == password
}

func (b *basicAuth) DecodeFromHeader(auth string) (string, string) {
	encoded := strings.TrimPrefix(auth, "Basic ")

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ""
	}

	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 {
		return "", ""
	}

	return parts[0], parts[1]
}
