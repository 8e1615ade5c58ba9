package directory

import "time"

// Role is a named permission set assignable to users. System roles ship
// with the portal and can never be deleted.
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsSystem    bool     `json:"isSystem"`
	Permissions []string `json:"permissions"`
	// UserCount is a read-time projection of how many users hold the role.
	// It is never the source of truth; the user collection is.
	UserCount int `json:"userCount"`
}

func (r Role) Clone() Role {
	out := r
	out.Permissions = append([]string(nil), r.Permissions...)
	return out
}

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusPending  UserStatus = "pending"
)

func (s UserStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// User references its role by ID only. The reference is weak: deleting a
// role leaves its users pointing at a role that no longer exists, resolved
// lazily through the viewer fallback.
type User struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	AvatarURL  string     `json:"avatar,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Company    string     `json:"company,omitempty"`
	Department string     `json:"department,omitempty"`
	RoleID     string     `json:"roleId"`
	Status     UserStatus `json:"status"`
	LastLogin  *time.Time `json:"lastLogin"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserWithRole is the denormalized view combining a user with its resolved
// role, recomputed on every read so it always reflects the latest role
// definitions.
type UserWithRole struct {
	User
	Role Role `json:"role"`
}

func cloneRoles(roles []Role) []Role {
	out := make([]Role, len(roles))
	for i, r := range roles {
		out[i] = r.Clone()
	}
	return out
}

func cloneUsers(users []User) []User {
	out := make([]User, len(users))
	copy(out, users)
	return out
}
