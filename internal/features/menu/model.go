package menu

// Entry is one static navigation definition. Definitions form a tree and are
// resolved per request; nothing here is persisted.
type Entry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`

	// URLName names a route in the route table. Empty means the entry is a
	// grouping label with no link of its own.
	URLName string `json:"url_name,omitempty"`

	// DynamicKwargs maps route parameters to dotted paths resolved against
	// the per-request {user, profile} context, e.g. "profile.faction.slug".
	DynamicKwargs map[string]string `json:"dynamic_kwargs,omitempty"`

	// Condition names a predicate in the condition registry. Empty means
	// always visible. A failing condition hides the whole subtree.
	Condition string `json:"condition,omitempty"`

	Children []Entry `json:"children,omitempty"`

	// Group "quick" routes the entry to the quick menu instead of primary.
	Group string `json:"group,omitempty"`
}

// ResolvedEntry is what templates render. An empty URL means the link is
// disabled, never an error.
type ResolvedEntry struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Icon     string          `json:"icon"`
	URL      string          `json:"url"`
	Children []ResolvedEntry `json:"children"`
	Favorite bool            `json:"favorite,omitempty"`
}

// Menu is the per-request navigation payload.
type Menu struct {
	Primary []ResolvedEntry `json:"primary"`
	Quick   []ResolvedEntry `json:"quick"`
}

// TopLink is a static header link rendered outside the role menus.
type TopLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
