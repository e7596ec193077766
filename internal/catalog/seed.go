// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package catalog holds the seed catalog data and the filter/sort engine.
package catalog

import "github.com/janderssonse/appcatalog/internal/domain"

// Seed is the startup data for a session.
type Seed struct {
	Apps     []domain.App            `toml:"apps"`
	Requests []domain.PendingRequest `toml:"requests"`
}

// Clone deep-copies the seed so sessions never share backing arrays.
func (s Seed) Clone() Seed {
	requests := make([]domain.PendingRequest, len(s.Requests))
	copy(requests, s.Requests)

	return Seed{
		Apps:     domain.CloneApps(s.Apps),
		Requests: requests,
	}
}

// DefaultSeed returns a fresh copy of the built-in catalog.
func DefaultSeed() Seed {
	return Seed{
		Apps:     SeedApps(),
		Requests: SeedRequests(),
	}
}

// SeedApps returns the built-in application records.
func SeedApps() []domain.App {
	return []domain.App{
		{
			ID:          "1",
			Name:        "Slack",
			Description: "Team communication and collaboration platform for messaging, file sharing, and project coordination.",
			Rating:      4,
			Category:    domain.CategoryHR,
			HasAccess:   true,
			Icon:        "💬",
			Features: []string{
				"Real-time messaging",
				"File sharing and storage",
				"Video and voice calls",
				"App integrations",
			},
			AccessRequirements: []string{
				"Manager approval required",
				"Complete security training",
			},
		},
		{
			ID:          "2",
			Name:        "Jira",
			Description: "Project management and issue tracking software for agile development teams and workflows.",
			Rating:      4,
			Category:    domain.CategoryEngineering,
			HasAccess:   false,
			Icon:        "🔧",
			Features: []string{
				"Issue tracking",
				"Agile project management",
				"Custom workflows",
				"Reporting and analytics",
			},
			AccessRequirements: []string{
				"Engineering team member",
				"IT approval required",
				"Project lead endorsement",
			},
		},
		{
			ID:          "3",
			Name:        "Salesforce",
			Description: "Customer relationship management platform for sales, marketing, and customer service teams.",
			Rating:      5,
			Category:    domain.CategorySales,
			HasAccess:   true,
			Icon:        "☁️",
			Features: []string{
				"Lead management",
				"Sales pipeline tracking",
				"Customer data management",
				"Sales analytics",
			},
			AccessRequirements: []string{
				"Sales team member",
				"CRM training completion",
			},
		},
		{
			ID:          "4",
			Name:        "Figma",
			Description: "Collaborative design platform for creating user interfaces, prototypes, and design systems.",
			Rating:      5,
			Category:    domain.CategoryDesign,
			HasAccess:   false,
			Icon:        "🎨",
			Features: []string{
				"Real-time collaboration",
				"Prototyping tools",
				"Design systems",
				"Developer handoff",
			},
			AccessRequirements: []string{
				"Design team member",
				"Creative license approval",
			},
		},
		{
			ID:          "5",
			Name:        "GitHub",
			Description: "Version control and code collaboration platform for software development and project management.",
			Rating:      5,
			Category:    domain.CategoryEngineering,
			HasAccess:   false,
			Icon:        "🐙",
			Features: []string{
				"Git repository hosting",
				"Code review tools",
				"Issue tracking",
				"CI/CD integration",
			},
			AccessRequirements: []string{
				"Engineering team member",
				"Security clearance",
				"Git training completion",
			},
		},
		{
			ID:          "6",
			Name:        "HubSpot",
			Description: "Marketing automation and customer service platform for inbound marketing and sales.",
			Rating:      4,
			Category:    domain.CategoryMarketing,
			HasAccess:   true,
			Icon:        "📈",
			Features: []string{
				"Email marketing",
				"Lead scoring",
				"Marketing automation",
				"Analytics dashboard",
			},
			AccessRequirements: []string{
				"Marketing team member",
			},
		},
		{
			ID:          "7",
			Name:        "Workday",
			Description: "Human capital management software for HR, payroll, and workforce planning.",
			Rating:      3,
			Category:    domain.CategoryHR,
			HasAccess:   true,
			Icon:        "👥",
			Features: []string{
				"Employee management",
				"Payroll processing",
				"Performance tracking",
				"Time and attendance",
			},
			AccessRequirements: []string{
				"HR team member",
				"Confidentiality agreement",
			},
		},
		{
			ID:          "8",
			Name:        "QuickBooks",
			Description: "Accounting software for financial management, invoicing, and expense tracking.",
			Rating:      4,
			Category:    domain.CategoryFinance,
			HasAccess:   false,
			Icon:        "💰",
			Features: []string{
				"Invoice management",
				"Expense tracking",
				"Financial reporting",
				"Tax preparation",
			},
			AccessRequirements: []string{
				"Finance team member",
				"Accounting certification",
				"CFO approval",
			},
		},
		{
			ID:          "9",
			Name:        "Zoom",
			Description: "Video conferencing and online meeting platform for remote communication.",
			Rating:      4,
			Category:    domain.CategoryIT,
			HasAccess:   true,
			Icon:        "📹",
			Features: []string{
				"HD video conferencing",
				"Screen sharing",
				"Recording capabilities",
				"Webinar hosting",
			},
			AccessRequirements: []string{
				"Basic user agreement",
			},
		},
		{
			ID:          "10",
			Name:        "Notion",
			Description: "All-in-one workspace for notes, tasks, wikis, and databases.",
			Rating:      5,
			Category:    domain.CategoryIT,
			HasAccess:   false,
			Icon:        "📝",
			Features: []string{
				"Note-taking",
				"Task management",
				"Database creation",
				"Team collaboration",
			},
			AccessRequirements: []string{
				"Team lead approval",
				"Data handling training",
			},
		},
		{
			ID:          "11",
			Name:        "Adobe Creative Suite",
			Description: "Professional creative software suite for design, video editing, and digital content creation.",
			Rating:      5,
			Category:    domain.CategoryDesign,
			HasAccess:   false,
			Icon:        "🎭",
			Features: []string{
				"Photo editing (Photoshop)",
				"Vector graphics (Illustrator)",
				"Video editing (Premiere)",
				"PDF creation (Acrobat)",
			},
			AccessRequirements: []string{
				"Creative team member",
				"Expensive license approval",
				"Training certification",
			},
		},
		{
			ID:          "12",
			Name:        "Tableau",
			Description: "Data visualization and business intelligence platform for creating interactive dashboards.",
			Rating:      4,
			Category:    domain.CategoryFinance,
			HasAccess:   false,
			Icon:        "📊",
			Features: []string{
				"Data visualization",
				"Interactive dashboards",
				"Advanced analytics",
				"Data connection",
			},
			AccessRequirements: []string{
				"Data analyst role",
				"BI training completion",
				"Department head approval",
			},
		},
	}
}

// SeedRequests returns the built-in request history, newest first.
func SeedRequests() []domain.PendingRequest {
	return []domain.PendingRequest{
		{ID: "req-1", AppName: "Figma", AppIcon: "🎨", RequestDate: "Dec 10, 2024", Status: domain.StatusPending},
		{ID: "req-2", AppName: "GitHub", AppIcon: "🐙", RequestDate: "Dec 8, 2024", Status: domain.StatusPending},
		{ID: "req-3", AppName: "Notion", AppIcon: "📝", RequestDate: "Dec 5, 2024", Status: domain.StatusApproved},
	}
}
