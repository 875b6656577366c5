package user

import "github.com/RiskyOsDev/ariesrobot/internal/platform"

// User represents a row in the users table.
type User struct {
	ID   platform.Snowflake
	Name string
}
