package dashboard

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWidgetDefaults(t *testing.T) {
	w := NewTextWidget("Welcome Home", "hello")

	assert.Equal(t, "welcome-home", w.Key)
	assert.True(t, strings.HasPrefix(w.Slug, "welcome-home-"))
	assert.Len(t, w.Slug, len("welcome-home-")+5, "slug carries a 5 char suffix")
	assert.Equal(t, WidgetTypeText, w.Type)
	assert.Equal(t, "dashboard/widgets/text.html", w.Template)
	assert.Equal(t, defaultWidth, w.Width)
	assert.Equal(t, defaultPriority, w.Priority)
}

func TestWidgetSlugsAreUniquePerRender(t *testing.T) {
	a := NewTextWidget("Welcome", "x")
	b := NewTextWidget("Welcome", "y")

	assert.Equal(t, a.Key, b.Key)
	assert.NotEqual(t, a.Slug, b.Slug)
}

func TestAsDictReservedKeysWin(t *testing.T) {
	w := NewMetricsWidget("Stats", []Metric{{Label: "Enrollments", Value: 3}})
	w.Payload["title"] = "sneaky override"

	d := w.AsDict()
	assert.Equal(t, "Stats", d["title"], "reserved attributes beat payload entries")
	assert.Equal(t, WidgetTypeMetrics, d["type"])

	metrics, ok := d["metrics"].([]Metric)
	require.True(t, ok)
	assert.Equal(t, int64(3), metrics[0].Value)
}

func TestMetricCarriesDeltaAndDescription(t *testing.T) {
	w := NewMetricsWidget("Faction Stats", []Metric{
		{Label: "Members", Value: 14, Delta: "+2", Description: "since last week"},
	})

	metrics, ok := w.Payload["metrics"].([]Metric)
	require.True(t, ok)
	assert.Equal(t, "+2", metrics[0].Delta)
	assert.Equal(t, "since last week", metrics[0].Description)

	// Empty delta and description still serialize as keys, not omissions.
	raw, err := json.Marshal(Metric{Label: "Members", Value: 14})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"delta"`)
	assert.Contains(t, string(raw), `"description"`)
}

func TestListItemCarriesSubtitleAndIcon(t *testing.T) {
	w := NewListWidget("Resources", []ListItem{
		{Label: "Packing List", Subtitle: "Updated for 2025", Icon: "fas fa-file"},
	})

	items, ok := w.Payload["items"].([]ListItem)
	require.True(t, ok)
	assert.Equal(t, "Updated for 2025", items[0].Subtitle)
	assert.Equal(t, "fas fa-file", items[0].Icon)
	assert.Equal(t, "There is nothing to show here right now.", w.Payload["empty_message"])
}

func TestResourceListWidgetEmptyMessage(t *testing.T) {
	w := NewResourceListWidget("Resources", nil)
	assert.Equal(t, "No resources available.", w.Payload["empty_message"])
}

func TestAnnouncementWidgetPinsToTop(t *testing.T) {
	w := NewAnnouncementWidget("Notice", "camp starts monday")
	assert.Equal(t, 12, w.Width)
	assert.Equal(t, 1, w.Priority)
	assert.Equal(t, WidgetTypeText, w.Type)
}
