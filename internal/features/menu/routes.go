package menu

import "strings"

// routeTable maps route names to path templates. Parameters use the fiber
// ":name" form and are filled by Reverse.
var routeTable = map[string]string{
	"dashboard":                   "/dashboard",
	"resources":                   "/resources",
	"attendees:enrollments:index": "/attendees/:slug/enrollments",
	"factions:enrollments:index":  "/factions/:slug/enrollments",
	"leaders:index":               "/leaders",
	"leaders:dashboard":           "/leaders/dashboard",
	"facultys:manage":             "/facultys/manage",
	"facilities:facultys:new":     "/facilities/:facility_slug/facultys/new",
	"facilities:faculty:manage":   "/facilities/:facility_slug/faculty/manage",
	"reports:list_user_reports":   "/reports/users",
	"organizations:index":         "/organizations",
	"admin:index":                 "/admin",
}

// Reverse resolves a route name and its parameters into a concrete URL.
// It returns "" when the name is unknown or any parameter is missing, so
// callers render a disabled link instead of failing the page.
func Reverse(name string, params map[string]string) string {
	template, ok := routeTable[name]
	if !ok {
		return ""
	}

	parts := strings.Split(template, "/")
	for i, part := range parts {
		if !strings.HasPrefix(part, ":") {
			continue
		}
		value, ok := params[part[1:]]
		if !ok || value == "" {
			return ""
		}
		parts[i] = value
	}
	return strings.Join(parts, "/")
}
