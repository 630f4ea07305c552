package catalog

import "strings"

// Icon describes how a client should render an integration.
type Icon struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// DefaultIcon is returned for unknown or empty icon names.
var DefaultIcon = Icon{Name: "plug", Label: "Integration"}

var icons = map[string]Icon{
	"calendar":       {Name: "calendar", Label: "Calendar"},
	"mail":           {Name: "mail", Label: "Mail"},
	"message-square": {Name: "message-square", Label: "Messaging"},
	"database":       {Name: "database", Label: "Student Information System"},
	"graduation-cap": {Name: "graduation-cap", Label: "Learning Platform"},
	"users":          {Name: "users", Label: "Directory"},
	"plug":           DefaultIcon,
}

// ResolveIcon looks name up in the registry, case-insensitively, falling back to DefaultIcon.
func ResolveIcon(name string) Icon {
	if icon, ok := icons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return icon
	}
	return DefaultIcon
}
