package directory_test

import (
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/helpdeskhq/portal-core/internal"
	"github.com/helpdeskhq/portal-core/internal/directory"
)

func TestDirectoryService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Directory Service Suite")
}

// MockStore implements directory.StoreAPI for testing.
type MockStore struct {
	records    map[string][]byte
	shouldFail bool
	failError  error
}

func NewMockStore() *MockStore {
	return &MockStore{records: make(map[string][]byte)}
}

func (m *MockStore) Load(key string, out any) (bool, error) {
	raw, ok := m.records[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MockStore) Save(key string, value any) error {
	if m.shouldFail {
		return m.failError
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.records[key] = raw
	return nil
}

func (m *MockStore) Seed(key string, value any) {
	raw, err := json.Marshal(value)
	Expect(err).NotTo(HaveOccurred())
	m.records[key] = raw
}

var _ = Describe("Directory Service", func() {
	var (
		store   *MockStore
		service *directory.Service
		logger  *slog.Logger
	)

	BeforeEach(func() {
		store = NewMockStore()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = directory.NewService(store, "viewer", logger)
	})

	Describe("startup", func() {
		It("provisions the system roles and sample users when the store is empty", func() {
			roles := service.ListRoles()
			Expect(roles).To(HaveLen(4))
			Expect(service.ListUsers()).To(HaveLen(4))
		})

		It("loads persisted collections when they exist", func() {
			store.Seed(directory.RolesStoreKey, []directory.Role{
				{ID: "viewer", Name: "Viewer", IsSystem: true, Permissions: []string{"view:m1"}},
			})
			store.Seed(directory.UsersStoreKey, []directory.User{})
			service = directory.NewService(store, "viewer", logger)

			Expect(service.ListRoles()).To(HaveLen(1))
			Expect(service.ListUsers()).To(BeEmpty())
		})
	})

	Describe("roles", func() {
		It("creates a non-system role with a fresh ID", func() {
			created, err := service.AddRole(directory.CreateRoleDTO{
				Name:        "Support",
				Permissions: []string{"view:claim-module"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.IsSystem).To(BeFalse())
			Expect(created.UserCount).To(BeZero())
		})

		It("rejects a role with no permissions before anything is persisted", func() {
			before := store.records[directory.RolesStoreKey]
			_, err := service.AddRole(directory.CreateRoleDTO{Name: "Support"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(store.records[directory.RolesStoreKey]).To(Equal(before))
		})

		It("re-validates the merged role on update", func() {
			empty := []string{}
			err := service.UpdateRole("editor", directory.UpdateRoleDTO{Permissions: &empty})
			Expect(err).To(HaveOccurred())

			role, getErr := service.GetRole("editor")
			Expect(getErr).NotTo(HaveOccurred())
			Expect(role.Permissions).NotTo(BeEmpty())
		})

		It("silently refuses to delete a system role", func() {
			before := len(service.ListRoles())
			Expect(service.DeleteRole("admin")).To(Succeed())
			Expect(service.ListRoles()).To(HaveLen(before))
		})

		It("deletes a custom role without touching its users", func() {
			created, err := service.AddRole(directory.CreateRoleDTO{
				Name:        "Support",
				Permissions: []string{"view:claim-module"},
			})
			Expect(err).NotTo(HaveOccurred())

			user, err := service.AddUser(directory.CreateUserDTO{
				FirstName: "Sam",
				LastName:  "Reyes",
				Email:     "sam.reyes@example.com",
				RoleID:    created.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteRole(created.ID)).To(Succeed())

			// the reference dangles, it is not rewritten
			orphan, err := service.GetUser(user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(orphan.RoleID).To(Equal(created.ID))
		})

		It("computes user counts from the user collection at read time", func() {
			countFor := func(id string) int {
				for _, r := range service.ListRoles() {
					if r.ID == id {
						return r.UserCount
					}
				}
				return -1
			}
			Expect(countFor("editor")).To(Equal(2))

			roleID := "editor"
			Expect(service.BulkUpdateUsers([]string{"2", "4"}, directory.UpdateUserDTO{RoleID: strPtr("viewer")})).To(Succeed())
			Expect(countFor(roleID)).To(BeZero())
			Expect(countFor("viewer")).To(Equal(3))
		})
	})

	Describe("users", func() {
		It("creates a user with generated ID, pending status, and no last login", func() {
			created, err := service.AddUser(directory.CreateUserDTO{
				FirstName: "Sam",
				LastName:  "Reyes",
				Email:     "sam.reyes@example.com",
				RoleID:    "viewer",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Status).To(Equal(directory.StatusPending))
			Expect(created.LastLogin).To(BeNil())
			Expect(created.CreatedAt).NotTo(BeZero())
		})

		It("rejects an invalid email address", func() {
			_, err := service.AddUser(directory.CreateUserDTO{
				FirstName: "Sam",
				LastName:  "Reyes",
				Email:     "not-an-email",
				RoleID:    "viewer",
			})
			Expect(err).To(HaveOccurred())
		})

		It("patches only the fields set in the update", func() {
			Expect(service.UpdateUser("1", directory.UpdateUserDTO{Department: strPtr("Platform")})).To(Succeed())

			u, err := service.GetUser("1")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Department).To(Equal("Platform"))
			Expect(u.Email).To(Equal("john.doe@company.com"))
		})

		It("treats updating a missing user as not-found", func() {
			err := service.UpdateUser("no-such-user", directory.UpdateUserDTO{Department: strPtr("Platform")})
			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})

		It("bulk-updates only the listed users, skipping unknown IDs", func() {
			status := directory.StatusInactive
			Expect(service.BulkUpdateUsers([]string{"1", "2", "no-such-user"}, directory.UpdateUserDTO{Status: &status})).To(Succeed())

			one, _ := service.GetUser("1")
			two, _ := service.GetUser("2")
			three, _ := service.GetUser("3")
			Expect(one.Status).To(Equal(directory.StatusInactive))
			Expect(two.Status).To(Equal(directory.StatusInactive))
			Expect(three.Status).To(Equal(directory.StatusInactive)) // seeded inactive already
		})

		It("bulk-deletes the listed users", func() {
			Expect(service.BulkDeleteUsers([]string{"1", "3"})).To(Succeed())
			Expect(service.ListUsers()).To(HaveLen(2))
		})
	})

	Describe("ResolveRole", func() {
		It("resolves a valid reference directly", func() {
			u, err := service.GetUser("1")
			Expect(err).NotTo(HaveOccurred())

			role, err := service.ResolveRole(*u)
			Expect(err).NotTo(HaveOccurred())
			Expect(role.ID).To(Equal("admin"))
		})

		It("falls back to the viewer role for a dangling reference", func() {
			role, err := service.ResolveRole(directory.User{ID: "x", RoleID: "nonexistent"})
			Expect(err).NotTo(HaveOccurred())
			Expect(role.ID).To(Equal("viewer"))
		})

		It("fails loudly when the viewer fallback itself is missing", func() {
			store.Seed(directory.RolesStoreKey, []directory.Role{
				{ID: "admin", Name: "Admin", IsSystem: true, Permissions: []string{"*"}},
			})
			service = directory.NewService(store, "viewer", logger)

			_, err := service.ResolveRole(directory.User{ID: "x", RoleID: "nonexistent"})
			Expect(err).To(MatchError(internal.ErrViewerRoleMissing))
		})
	})

	Describe("FullName", func() {
		It("joins first and last names", func() {
			u := directory.User{FirstName: "John", LastName: "Doe"}
			Expect(u.FullName()).To(Equal("John Doe"))
		})

		It("omits whichever half is missing", func() {
			Expect(directory.User{FirstName: "Cher"}.FullName()).To(Equal("Cher"))
			Expect(directory.User{LastName: "Doe"}.FullName()).To(Equal("Doe"))
		})
	})

	Describe("ListUsersWithRoles", func() {
		It("joins every user to its resolved role", func() {
			views, err := service.ListUsersWithRoles()
			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(4))
			Expect(views[0].Role.ID).To(Equal("admin"))
		})

		It("recomputes the join so role edits show up on the next read", func() {
			name := "Content Editor"
			Expect(service.UpdateRole("editor", directory.UpdateRoleDTO{Name: &name})).To(Succeed())

			views, err := service.ListUsersWithRoles()
			Expect(err).NotTo(HaveOccurred())
			for _, v := range views {
				if v.RoleID == "editor" {
					Expect(v.Role.Name).To(Equal("Content Editor"))
				}
			}
		})
	})
})

func strPtr(s string) *string {
	return &s
}
