package directory

import "time"

// DefaultRoles are the system roles the directory is provisioned with when
// the store has no readable record. The viewer role doubles as the fallback
// target for dangling role references, so it must always be present here.
func DefaultRoles() []Role {
	return []Role{
		{
			ID:          "admin",
			Name:        "Admin",
			Description: "Full access to all resources",
			IsSystem:    true,
			Permissions: []string{"*"},
		},
		{
			ID:          "editor",
			Name:        "Editor",
			Description: "Can manage content and users",
			IsSystem:    true,
			Permissions: []string{"view:policy-management", "view:claims-processing", "view:user-administration", "view:system-settings"},
		},
		{
			ID:          "viewer",
			Name:        "Viewer",
			Description: "Read-only access to policies and claims",
			IsSystem:    true,
			Permissions: []string{"view:policy-management", "view:claims-processing"},
		},
		{
			ID:          "customer",
			Name:        "Customer",
			Description: "Standard customer access",
			IsSystem:    true,
			Permissions: []string{"view:policy-management:create-policy", "view:support-center"},
		},
	}
}

// DefaultUsers are the sample accounts seeded alongside the system roles.
func DefaultUsers() []User {
	twoHoursAgo := time.Now().Add(-2 * time.Hour)
	threeDaysAgo := time.Now().Add(-72 * time.Hour)
	janLogin := time.Date(2025, time.January, 10, 9, 15, 0, 0, time.UTC)

	return []User{
		{
			ID:         "1",
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john.doe@company.com",
			Phone:      "+1 (555) 123-4567",
			Company:    "Acme Corp",
			Department: "IT",
			RoleID:     "admin",
			Status:     StatusActive,
			LastLogin:  &twoHoursAgo,
			CreatedAt:  time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			FirstName:  "Jane",
			LastName:   "Smith",
			Email:      "jane.smith@company.com",
			Phone:      "+1 (555) 987-6543",
			Company:    "Tech Solutions",
			Department: "Support",
			RoleID:     "editor",
			Status:     StatusActive,
			LastLogin:  &threeDaysAgo,
			CreatedAt:  time.Date(2025, time.February, 10, 11, 30, 0, 0, time.UTC),
		},
		{
			ID:         "3",
			FirstName:  "Bob",
			LastName:   "Wilson",
			Email:      "bob@example.com",
			Company:    "StartupXYZ",
			Department: "Sales",
			RoleID:     "viewer",
			Status:     StatusInactive,
			LastLogin:  &janLogin,
			CreatedAt:  time.Date(2024, time.December, 5, 14, 45, 0, 0, time.UTC),
		},
		{
			ID:         "4",
			FirstName:  "Alice",
			LastName:   "Brown",
			Email:      "alice.brown@example.com",
			Company:    "Innovate Inc",
			Department: "Design",
			RoleID:     "editor",
			Status:     StatusPending,
			LastLogin:  nil,
			CreatedAt:  time.Now(),
		},
	}
}
