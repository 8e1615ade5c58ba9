package directory

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/helpdeskhq/portal-core/internal"
	"github.com/helpdeskhq/portal-core/internal/permission"
)

// Store keys for the two independently persisted collections.
const (
	RolesStoreKey = "admin_roles_v1"
	UsersStoreKey = "admin_users_v1"
)

// StoreAPI is the slice of the persistent store the directory needs.
type StoreAPI interface {
	Load(key string, out any) (bool, error)
	Save(key string, value any) error
}

// Service owns role and user lifetime. Roles and users reference each other
// by ID only; no operation here cascades across the two collections.
type Service struct {
	store        StoreAPI
	logger       *slog.Logger
	viewerRoleID string

	roles []Role
	users []User
}

func NewService(store StoreAPI, viewerRoleID string, logger *slog.Logger) *Service {
	s := &Service{store: store, viewerRoleID: viewerRoleID, logger: logger}

	var roles []Role
	ok, err := store.Load(RolesStoreKey, &roles)
	if err != nil {
		s.logger.Warn("discarding unreadable roles record", "key", RolesStoreKey, "error", err)
		ok = false
	}
	if ok {
		s.roles = roles
	} else {
		s.roles = DefaultRoles()
	}

	var users []User
	ok, err = store.Load(UsersStoreKey, &users)
	if err != nil {
		s.logger.Warn("discarding unreadable users record", "key", UsersStoreKey, "error", err)
		ok = false
	}
	if ok {
		s.users = users
	} else {
		s.users = DefaultUsers()
	}

	return s
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *Service) persistRoles() {
	if err := s.store.Save(RolesStoreKey, s.roles); err != nil {
		s.logger.Warn("roles persist failed; in-memory state remains authoritative",
			"key", RolesStoreKey, "error", err)
	}
}

func (s *Service) persistUsers() {
	if err := s.store.Save(UsersStoreKey, s.users); err != nil {
		s.logger.Warn("users persist failed; in-memory state remains authoritative",
			"key", UsersStoreKey, "error", err)
	}
}

func (s *Service) userCountFor(roleID string) int {
	n := 0
	for _, u := range s.users {
		if u.RoleID == roleID {
			n++
		}
	}
	return n
}

// ListRoles returns every role with its user count computed from the user
// collection at read time.
func (s *Service) ListRoles() []Role {
	out := cloneRoles(s.roles)
	for i := range out {
		out[i].UserCount = s.userCountFor(out[i].ID)
	}
	return out
}

func (s *Service) GetRole(id string) (*Role, error) {
	for i := range s.roles {
		if s.roles[i].ID == id {
			r := s.roles[i].Clone()
			r.UserCount = s.userCountFor(r.ID)
			return &r, nil
		}
	}
	return nil, internal.ErrRoleNotFound
}

func (s *Service) AddRole(dto CreateRoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	role := Role{
		ID:          newID(),
		Name:        dto.Name,
		Description: dto.Description,
		IsSystem:    false,
		Permissions: append([]string(nil), dto.Permissions...),
	}

	s.roles = append(cloneRoles(s.roles), role)
	s.persistRoles()

	s.logger.Info("role created", "role_id", role.ID, "name", role.Name)
	created := role.Clone()
	return &created, nil
}

func (s *Service) UpdateRole(id string, dto UpdateRoleDTO) error {
	next := cloneRoles(s.roles)
	found := false
	for i := range next {
		if next[i].ID != id {
			continue
		}
		found = true
		if dto.Name != nil {
			next[i].Name = *dto.Name
		}
		if dto.Description != nil {
			next[i].Description = *dto.Description
		}
		if dto.Permissions != nil {
			next[i].Permissions = append([]string(nil), (*dto.Permissions)...)
		}
		// the merged role must still satisfy the invariants
		if err := permission.ValidateRole(next[i].Name, next[i].Permissions); err != nil {
			return err
		}
	}
	if !found {
		return internal.ErrRoleNotFound
	}

	s.roles = next
	s.persistRoles()
	return nil
}

// DeleteRole removes a role. System roles are silently refused: callers
// that need to distinguish refusal from success check IsSystem themselves.
// Users referencing the deleted role keep their roleId and resolve through
// the viewer fallback from then on.
func (s *Service) DeleteRole(id string) error {
	next := make([]Role, 0, len(s.roles))
	found := false
	for _, r := range s.roles {
		if r.ID == id {
			if r.IsSystem {
				s.logger.Warn("refusing to delete system role", "role_id", id)
				return nil
			}
			found = true
			continue
		}
		next = append(next, r.Clone())
	}
	if !found {
		return internal.ErrRoleNotFound
	}

	s.roles = next
	s.persistRoles()
	s.logger.Info("role deleted", "role_id", id)
	return nil
}

func (s *Service) ListUsers() []User {
	return cloneUsers(s.users)
}

func (s *Service) GetUser(id string) (*User, error) {
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

func (s *Service) AddUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	status := dto.Status
	if status == "" {
		status = StatusPending
	}

	user := User{
		ID:         newID(),
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		Email:      dto.Email,
		Phone:      dto.Phone,
		Company:    dto.Company,
		Department: dto.Department,
		AvatarURL:  dto.AvatarURL,
		RoleID:     dto.RoleID,
		Status:     status,
		LastLogin:  nil,
		CreatedAt:  time.Now(),
	}

	s.users = append(cloneUsers(s.users), user)
	s.persistUsers()

	s.logger.Info("user created", "user_id", user.ID, "name", user.FullName(), "role_id", user.RoleID)
	created := user
	return &created, nil
}

func applyUserPatch(u *User, dto UpdateUserDTO) {
	if dto.FirstName != nil {
		u.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		u.LastName = *dto.LastName
	}
	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Phone != nil {
		u.Phone = *dto.Phone
	}
	if dto.Company != nil {
		u.Company = *dto.Company
	}
	if dto.Department != nil {
		u.Department = *dto.Department
	}
	if dto.AvatarURL != nil {
		u.AvatarURL = *dto.AvatarURL
	}
	if dto.RoleID != nil {
		u.RoleID = *dto.RoleID
	}
	if dto.Status != nil {
		u.Status = *dto.Status
	}
}

func (s *Service) UpdateUser(id string, dto UpdateUserDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	next := cloneUsers(s.users)
	found := false
	for i := range next {
		if next[i].ID == id {
			applyUserPatch(&next[i], dto)
			found = true
		}
	}
	if !found {
		return internal.ErrUserNotFound
	}

	s.users = next
	s.persistUsers()
	return nil
}

func (s *Service) DeleteUser(id string) error {
	next := make([]User, 0, len(s.users))
	found := false
	for _, u := range s.users {
		if u.ID == id {
			found = true
			continue
		}
		next = append(next, u)
	}
	if !found {
		return internal.ErrUserNotFound
	}

	s.users = next
	s.persistUsers()
	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// BulkUpdateUsers applies the same patch to every listed user. IDs that do
// not exist are skipped, not an error.
func (s *Service) BulkUpdateUsers(ids []string, dto UpdateUserDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	next := cloneUsers(s.users)
	for i := range next {
		if _, ok := wanted[next[i].ID]; ok {
			applyUserPatch(&next[i], dto)
		}
	}

	s.users = next
	s.persistUsers()
	return nil
}

func (s *Service) BulkDeleteUsers(ids []string) error {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	next := make([]User, 0, len(s.users))
	for _, u := range s.users {
		if _, ok := wanted[u.ID]; ok {
			continue
		}
		next = append(next, u)
	}

	s.users = next
	s.persistUsers()
	return nil
}

// ResolveRole returns the user's role, falling back to the viewer role when
// the reference dangles. Dangling references are expected, since role
// deletion never cascades to users; a missing viewer role is the one loud,
// unrecoverable configuration error.
func (s *Service) ResolveRole(user User) (*Role, error) {
	if role, err := s.GetRole(user.RoleID); err == nil {
		return role, nil
	}

	role, err := s.GetRole(s.viewerRoleID)
	if err != nil {
		return nil, internal.ErrViewerRoleMissing
	}
	return role, nil
}

// ListUsersWithRoles joins every user to its resolved role. The join is
// recomputed on each call, never cached, so edits to a role show up in the
// very next read.
func (s *Service) ListUsersWithRoles() ([]UserWithRole, error) {
	out := make([]UserWithRole, 0, len(s.users))
	for _, u := range s.users {
		role, err := s.ResolveRole(u)
		if err != nil {
			return nil, err
		}
		out = append(out, UserWithRole{User: u, Role: *role})
	}
	return out, nil
}
