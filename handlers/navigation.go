package handlers

import (
	"strings"

	"dietSurvivalWeb/internal/types/user"
)

type NavItem struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// Navigation is the shell drawn around every page.
type Navigation struct {
	Visible bool              `json:"visible"`
	Items   []NavItem         `json:"items"`
	User    *user.SessionUser `json:"user,omitempty"`
}

var navItems = []NavItem{
	{Label: "대시보드", Href: "/dashboard", Icon: "home"},
	{Label: "식사 로그", Href: "/log", Icon: "camera"},
	{Label: "챌린지", Href: "/challenges", Icon: "trophy"},
	{Label: "프로필", Href: "/profile", Icon: "user"},
}

// NewNavigation marks the item whose href equals path as active. The nav
// is hidden on the login and auth callback pages.
func NewNavigation(path string, u *user.SessionUser) Navigation {
	nav := Navigation{
		Visible: !strings.HasPrefix(path, "/login") && !strings.HasPrefix(path, "/auth"),
		Items:   make([]NavItem, len(navItems)),
		User:    u,
	}
	for i, item := range navItems {
		item.Active = item.Href == path
		nav.Items[i] = item
	}
	return nav
}
