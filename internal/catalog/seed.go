package catalog

// DefaultModules is the catalog used when the store has no readable record.
// It mirrors the content the portal ships with before any authoring happens.
func DefaultModules() []Module {
	return []Module{
		{
			ID:          "base-module",
			Title:       "Base Module",
			Description: "The Base Module is the foundation of the software, providing core features like user login, role management, dashboard access, and system settings. It ensures secure access, easy navigation, and a personalized experience for all users.",
			Icon:        "Settings",
			Guides:      []Guide{},
		},
		{
			ID:          "admin-module",
			Title:       "Admin Module",
			Description: "Configure system settings and manage users, roles, and permissions.",
			Icon:        "Shield",
			Guides: []Guide{
				{
					ID:          "geo-management",
					Title:       "Geo Management",
					Description: "Comprehensive guide to managing geographical zones and regions.",
					VideoURL:    "/Geo Management (1).mp4",
					Steps: []string{
						"Navigate to System Settings > Geo Management.",
						"View the map of active zones.",
						`Click "Add Zone" to define a new geographical area.`,
						"Set zone parameters and assign agents.",
					},
				},
				{
					ID:          "sub-zone-management",
					Title:       "Sub Zone Management",
					Description: "Detailed instructions on creating and maintaining sub-zones.",
					VideoURL:    "/Geo management - Manage Sub Zones (1).mp4",
					Steps: []string{
						"Select a primary zone from the dashboard.",
						`Click "Manage Sub Zones".`,
						"Define boundaries for the sub-zone.",
						"Configure specific rules for the selected area.",
					},
				},
				{
					ID:          "add-user",
					Title:       "Adding a New User",
					Description: "Onboard a new employee to the system.",
					VideoURL:    "https://www.w3schools.com/html/movie.mp4",
					Steps: []string{
						`Access the "Admin" panel.`,
						`Select "User Management".`,
						`Click "Invite User" and enter their email address.`,
						"Assign appropriate role (e.g., Agent, Manager).",
						"Send the invitation.",
					},
				},
			},
		},
		{
			ID:          "product-builder-module",
			Title:       "Product Builder Module",
			Description: "Configure system settings and manage users, roles, and permissions.",
			Icon:        "Package",
			Guides:      []Guide{},
		},
		{
			ID:          "underwriting-module",
			Title:       "Underwriting Module",
			Description: "Configure system settings and manage users, roles, and permissions.",
			Icon:        "ClipboardCheck",
			Guides: []Guide{
				{
					ID:          "create-policy",
					Title:       "Creating a New Policy",
					Description: "Step-by-step guide to issuing a new insurance policy.",
					VideoURL:    "https://www.w3schools.com/html/mov_bbb.mp4",
					Steps: []string{
						`Navigate to the "Policies" tab in the main dashboard.`,
						`Click on the "New Policy" button in the top right corner.`,
						"Select the policy type (e.g., Auto, Home, Health).",
						"Fill in the customer details and coverage requirements.",
						`Review the calculated premium and click "Issue Policy".`,
					},
				},
				{
					ID:          "renew-policy",
					Title:       "Renewing an Existing Policy",
					Description: "How to process policy renewals and handle expirations.",
					VideoURL:    "https://www.w3schools.com/html/movie.mp4",
					Steps: []string{
						"Search for the policy using the policy number or customer name.",
						"Open the policy details page.",
						`Click on the "Renew" action button.`,
						"Verify current details and update if necessary.",
						"Confirm payment details and process the renewal.",
					},
				},
			},
		},
		{
			ID:          "finance-module",
			Title:       "Finance Module",
			Description: "This is the card content. It will be trimmed manually if too long.",
			Icon:        "BarChart3",
			Guides:      []Guide{},
		},
		{
			ID:          "payment-module",
			Title:       "Payment Module",
			Description: "Configure system settings and manage users, roles, and permissions.",
			Icon:        "CreditCard",
			Guides:      []Guide{},
		},
		{
			ID:          "receipt-module",
			Title:       "Receipt Module",
			Description: "Configure system settings and manage users, roles, and permissions.",
			Icon:        "Receipt",
			Guides:      []Guide{},
		},
		{
			ID:          "claim-module",
			Title:       "Claim Module",
			Description: "Configure system settings and manage users, roles, and permissions.",
			Icon:        "AlertCircle",
			Guides: []Guide{
				{
					ID:          "file-claim",
					Title:       "Filing a New Claim",
					Description: "Initiate a claim request for a customer.",
					VideoURL:    "https://www.w3schools.com/html/mov_bbb.mp4",
					Steps: []string{
						`Go to the "Claims" module.`,
						`Click "File Claim" and associate it with an active policy.`,
						"Enter incident details (date, time, description).",
						"Upload supporting documents and photos.",
						"Submit the claim for review.",
					},
				},
			},
		},
		{
			ID:          "customer-management",
			Title:       "Customer Management",
			Description: "Configure system settings and manage users, roles, and permissions.",
			Icon:        "Users",
			Guides:      []Guide{},
		},
	}
}
