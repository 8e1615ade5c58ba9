package directory

import (
	"github.com/helpdeskhq/portal-core/internal/permission"
	"github.com/helpdeskhq/portal-core/pkg/validator"
)

type CreateRoleDTO struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

func (d CreateRoleDTO) Validate() error {
	return permission.ValidateRole(d.Name, d.Permissions)
}

// UpdateRoleDTO patches a role; nil fields are untouched. The merged result
// is re-validated before anything is persisted.
type UpdateRoleDTO struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}

type CreateUserDTO struct {
	FirstName  string     `json:"firstName" validate:"required"`
	LastName   string     `json:"lastName" validate:"required"`
	Email      string     `json:"email" validate:"required,email"`
	Phone      string     `json:"phone"`
	Company    string     `json:"company"`
	Department string     `json:"department"`
	AvatarURL  string     `json:"avatar"`
	RoleID     string     `json:"roleId" validate:"required"`
	Status     UserStatus `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

func (d CreateUserDTO) Validate() error {
	return validator.Struct(d)
}

type UpdateUserDTO struct {
	FirstName  *string     `json:"firstName,omitempty"`
	LastName   *string     `json:"lastName,omitempty"`
	Email      *string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string     `json:"phone,omitempty"`
	Company    *string     `json:"company,omitempty"`
	Department *string     `json:"department,omitempty"`
	AvatarURL  *string     `json:"avatar,omitempty"`
	RoleID     *string     `json:"roleId,omitempty"`
	Status     *UserStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive pending"`
}

func (d UpdateUserDTO) Validate() error {
	return validator.Struct(d)
}
