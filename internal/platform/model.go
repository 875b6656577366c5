package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrRoleNotConfigured is returned when a scope has no role with the requested name.
var ErrRoleNotConfigured = errors.New("role not configured")

// discordEpoch is the first millisecond of 2015, the base of snowflake timestamps.
const discordEpoch = 1420070400000

// Snowflake is the opaque numeric identifier the platform assigns to users,
// guilds and roles.
type Snowflake uint64

// ParseSnowflake parses a decimal snowflake as sent on the wire.
func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing snowflake %q: %w", s, err)
	}
	return Snowflake(v), nil
}

// String renders the snowflake in decimal.
func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// MarshalJSON encodes the snowflake as a JSON string, matching the platform's
// wire format.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts both quoted and bare numeric snowflakes.
func (s *Snowflake) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	if raw == "" || raw == "null" {
		*s = 0
		return nil
	}
	v, err := ParseSnowflake(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// CreatedAt returns the creation time encoded in the upper 42 bits.
func (s Snowflake) CreatedAt() time.Time {
	ms := int64(s>>22) + discordEpoch
	return time.UnixMilli(ms).UTC()
}

// User is a platform account as resolved by the gateway layer.
type User struct {
	ID   Snowflake `json:"id"`
	Name string    `json:"username"`
	Bot  bool      `json:"bot,omitempty"`
}

// Member is the invoking user together with the roles they hold in the
// current scope. Roles is empty outside a scope.
type Member struct {
	User  User        `json:"user"`
	Roles []Snowflake `json:"roles,omitempty"`
}

// HasRole reports whether the member holds the given role.
func (m Member) HasRole(role Snowflake) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Scope is the guild an invocation happened in, with its role catalogue
// keyed by role name.
type Scope struct {
	ID    Snowflake            `json:"id"`
	Roles map[string]Snowflake `json:"roles,omitempty"`
}

// RoleByName resolves a role inside the scope. A missing role is a
// configuration problem of the guild and is reported as ErrRoleNotConfigured.
func (s *Scope) RoleByName(name string) (Snowflake, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: %s", ErrRoleNotConfigured, name)
	}
	id, ok := s.Roles[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrRoleNotConfigured, name)
	}
	return id, nil
}
