package auth

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to an account. Recruiters get the shortlist and bulk
// analysis surface; admins additionally see every recruiter's data.
const (
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// User is a registered recruiter account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
