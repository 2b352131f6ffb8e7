package domain

import "strings"

// NavItem is one link of the navigation bar.
type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// NavItems are the client-side routes in display order.
var NavItems = []NavItem{
	{Name: "Home", Href: "/"},
	{Name: "Virtual Classroom", Href: "/classroom"},
	{Name: "Content Library", Href: "/library"},
	{Name: "Interactive Quiz", Href: "/quiz"},
}

// CleanNavPath drops trailing slashes so "/quiz/" names the same screen as
// "/quiz". An empty result is the home route.
func CleanNavPath(path string) string {
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "/"
	}
	return path
}

// IsNavRoute reports whether path is one of the navigation targets.
func IsNavRoute(path string) bool {
	for _, item := range NavItems {
		if item.Href == path {
			return true
		}
	}
	return false
}

// NavState is the visitor's navigation bar state.
type NavState struct {
	MenuOpen bool `json:"menu_open"`
}

func (n *NavState) ToggleMenu() {
	n.MenuOpen = !n.MenuOpen
}

func (n *NavState) CloseMenu() {
	n.MenuOpen = false
}

// Feature is a card of the landing page feature grid.
type Feature struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
}

// Landing is the static marketing copy of the home page.
type Landing struct {
	Headline    string    `json:"headline" yaml:"headline" validate:"required"`
	Tagline     string    `json:"tagline" yaml:"tagline"`
	FeatureHead string    `json:"feature_head" yaml:"feature_head"`
	FeatureSub  string    `json:"feature_sub" yaml:"feature_sub"`
	Features    []Feature `json:"features" yaml:"features" validate:"dive"`
	CTAHead     string    `json:"cta_head" yaml:"cta_head"`
	CTASub      string    `json:"cta_sub" yaml:"cta_sub"`
}
