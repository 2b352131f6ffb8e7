package dto

// NavLink is a navigation bar entry with its active flag.
type NavLink struct {
	Name   string `json:"name"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// NavBar is the navigation bar rendered on every page.
type NavBar struct {
	Links    []NavLink `json:"links"`
	MenuOpen bool      `json:"menu_open"`
}
