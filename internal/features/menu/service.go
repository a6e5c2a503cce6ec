package menu

import (
	"context"
	"strings"

	"go-campfire/internal/features/user"

	"go.uber.org/zap"
)

type MenuService interface {
	// BuildMenuForUser resolves the registry into the primary and quick menus
	// for one request. Favorites come from the user's saved navigation keys
	// and are appended to the quick menu. Resolution never fails a request;
	// entries that cannot resolve render with an empty URL or are skipped.
	BuildMenuForUser(ctx context.Context, u *user.User, profile *user.Profile, favorites []string) *Menu
	TopLinks() []TopLink
}

type MenuServiceImpl struct {
	Logger *zap.Logger
}

func NewMenuService(logger *zap.Logger) MenuService {
	return &MenuServiceImpl{Logger: logger}
}

func (s *MenuServiceImpl) BuildMenuForUser(ctx context.Context, u *user.User, profile *user.Profile, favorites []string) *Menu {
	resolveCtx := buildResolveContext(u, profile)
	m := &Menu{Primary: []ResolvedEntry{}, Quick: []ResolvedEntry{}}

	for _, def := range DefinitionsForUser(u) {
		resolved, ok := s.resolveEntry(def, u, resolveCtx)
		if !ok {
			continue
		}
		if def.Group == "quick" {
			m.Quick = append(m.Quick, resolved)
		} else {
			m.Primary = append(m.Primary, resolved)
		}
	}

	s.appendFavorites(m, u, resolveCtx, favorites)
	return m
}

func (s *MenuServiceImpl) TopLinks() []TopLink {
	return TopLinks
}

// resolveEntry converts one definition into a renderable entry. It returns
// false when a condition hides the entry; a hidden parent hides its subtree.
func (s *MenuServiceImpl) resolveEntry(def Entry, u *user.User, resolveCtx map[string]interface{}) (ResolvedEntry, bool) {
	if def.Condition != "" {
		predicate, ok := conditions[def.Condition]
		if !ok {
			s.Logger.Warn("unknown menu condition", zap.String("action", "menu_resolve"), zap.String("condition", def.Condition), zap.String("key", def.Key))
			return ResolvedEntry{}, false
		}
		if !predicate(u) {
			return ResolvedEntry{}, false
		}
	}

	resolved := ResolvedEntry{
		Key:      def.Key,
		Label:    def.Label,
		Icon:     def.Icon,
		URL:      s.resolveURL(def, resolveCtx),
		Children: []ResolvedEntry{},
	}
	for _, child := range def.Children {
		childResolved, ok := s.resolveEntry(child, u, resolveCtx)
		if !ok {
			continue
		}
		resolved.Children = append(resolved.Children, childResolved)
	}
	return resolved, true
}

// resolveURL reverses the entry's named route after filling dynamic kwargs
// from the request context. Any unresolvable piece yields "" (disabled link).
func (s *MenuServiceImpl) resolveURL(def Entry, resolveCtx map[string]interface{}) string {
	if def.URLName == "" {
		return ""
	}

	params := map[string]string{}
	for param, path := range def.DynamicKwargs {
		value, ok := lookupPath(resolveCtx, path)
		if !ok || value == "" {
			return ""
		}
		params[param] = value
	}
	return Reverse(def.URLName, params)
}

func (s *MenuServiceImpl) appendFavorites(m *Menu, u *user.User, resolveCtx map[string]interface{}, favorites []string) {
	inQuick := map[string]bool{}
	for _, entry := range m.Quick {
		inQuick[entry.Key] = true
	}

	index := FlattenIndex()
	for _, key := range favorites {
		if inQuick[key] {
			continue
		}
		def, ok := index[key]
		if !ok {
			continue
		}
		resolved, ok := s.resolveEntry(def, u, resolveCtx)
		if !ok {
			continue
		}
		resolved.Favorite = true
		resolved.Children = []ResolvedEntry{}
		m.Quick = append(m.Quick, resolved)
		inQuick[key] = true
	}
}

// buildResolveContext flattens the user and profile into nested maps so
// dotted kwarg paths can walk them without reflection.
func buildResolveContext(u *user.User, profile *user.Profile) map[string]interface{} {
	resolveCtx := map[string]interface{}{}

	if u != nil {
		resolveCtx["user"] = map[string]interface{}{
			"id":       u.ID.Hex(),
			"username": u.Username,
		}
	}

	if profile != nil {
		p := map[string]interface{}{"slug": profile.Slug}
		if profile.Organization != nil {
			p["organization"] = map[string]interface{}{
				"slug": profile.Organization.Slug,
				"name": profile.Organization.Name,
			}
		}
		if profile.Faction != nil {
			p["faction"] = map[string]interface{}{
				"slug": profile.Faction.Slug,
				"name": profile.Faction.Name,
			}
		}
		if profile.Facility != nil {
			p["facility"] = map[string]interface{}{
				"slug": profile.Facility.Slug,
				"name": profile.Facility.Name,
			}
		}
		resolveCtx["profile"] = p
	}

	return resolveCtx
}

// lookupPath walks a dotted path through nested maps. It returns false when
// any segment is missing or the leaf is not a string.
func lookupPath(resolveCtx map[string]interface{}, path string) (string, bool) {
	current := interface{}(resolveCtx)
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		current, ok = node[segment]
		if !ok || current == nil {
			return "", false
		}
	}
	leaf, ok := current.(string)
	return leaf, ok
}
