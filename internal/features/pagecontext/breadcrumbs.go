package pagecontext

import (
	"strings"

	common_models "go-campfire/internal/common/models"

	"github.com/jinzhu/inflection"
)

// BuildBreadcrumbs walks the request path and emits one crumb per segment
// with an accumulated URL prefix. Labels come from the organization's label
// overrides (keyed "<segment>_label") when present; otherwise the segment is
// capitalized and pluralized. Identifier-looking segments and segments whose
// singular form has a label override keep their literal form.
func BuildBreadcrumbs(path string, labels map[string]string) []common_models.Breadcrumb {
	crumbs := []common_models.Breadcrumb{{Name: "Home", URL: "/"}}

	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return crumbs
	}

	url := ""
	for _, segment := range strings.Split(trimmed, "/") {
		url += "/" + segment

		label, hasLabel := labels[segment+"_label"]
		if !hasLabel {
			label = capitalize(segment)
		}
		if !skipPluralization(segment, labels) {
			label = inflection.Plural(label)
		}

		crumbs = append(crumbs, common_models.Breadcrumb{Name: label, URL: url})
	}
	return crumbs
}

// skipPluralization keeps identifiers and specifically-labelled entities in
// their literal form.
func skipPluralization(segment string, labels map[string]string) bool {
	if looksLikeID(segment) {
		return true
	}
	_, ok := labels[inflection.Singular(segment)+"_label"]
	return ok
}

// looksLikeID reports whether a segment is a numeric or object id rather
// than a noun worth pluralizing. Hyphenated slugs count as identifiers too.
func looksLikeID(segment string) bool {
	if segment == "" || strings.Contains(segment, "-") {
		return true
	}
	hex := true
	digits := true
	for _, r := range segment {
		if r < '0' || r > '9' {
			digits = false
		}
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			hex = false
		}
	}
	if digits {
		return true
	}
	return hex && len(segment) == 24
}

func capitalize(segment string) string {
	cleaned := strings.ReplaceAll(segment, "-", " ")
	if cleaned == "" {
		return cleaned
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}
