package render

import (
	"github.com/RiskyOsDev/ariesrobot/internal/platform"
	"github.com/RiskyOsDev/ariesrobot/internal/user"
)

// Pong is the result of ping. Echo is false when no text was given.
type Pong struct {
	Text string
	Echo bool
}

// AccountAge is the result of age.
type AccountAge struct {
	User platform.User
}

// ScopeID is the result of gid. OK is false outside a guild.
type ScopeID struct {
	ID platform.Snowflake
	OK bool
}

// Registration is the result of get_user. Entry is nil when the user is
// not registered.
type Registration struct {
	ID    platform.Snowflake
	Entry *user.User
}

// Created is the result of add_user.
type Created struct {
	User platform.User
}

// Deleted is the result of rm_user.
type Deleted struct {
	User platform.User
}
