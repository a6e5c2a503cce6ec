package dashboard

import (
	"go-campfire/pkg/utils"

	"github.com/google/uuid"
)

const (
	WidgetTypeText    = "text"
	WidgetTypeActions = "actions"
	WidgetTypeMetrics = "metrics"
	WidgetTypeTable   = "table"
	WidgetTypeChart   = "chart"
	WidgetTypeList    = "list"
)

const (
	defaultWidth    = 6
	defaultPriority = 10
)

// Widget is one dashboard card. Key identifies the widget across requests
// (layout and hidden lists reference it); Slug is unique per render so the
// same widget can appear twice on one page without DOM id collisions.
type Widget struct {
	Slug     string
	Key      string
	Title    string
	Type     string
	Template string
	Width    int
	Priority int
	Payload  map[string]interface{}
}

// AsDict flattens the widget for JSON rendering. Payload entries come first;
// the reserved attributes always win on collision.
func (w *Widget) AsDict() map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range w.Payload {
		out[k] = v
	}
	out["slug"] = w.Slug
	out["key"] = w.Key
	out["title"] = w.Title
	out["type"] = w.Type
	out["template"] = w.Template
	out["width"] = w.Width
	out["priority"] = w.Priority
	return out
}

func newWidget(widgetType, title string, payload map[string]interface{}) *Widget {
	key := utils.Slugify(title)
	return &Widget{
		Slug:     key + "-" + uuid.NewString()[:5],
		Key:      key,
		Title:    title,
		Type:     widgetType,
		Template: "dashboard/widgets/" + widgetType + ".html",
		Width:    defaultWidth,
		Priority: defaultPriority,
		Payload:  payload,
	}
}

func NewTextWidget(title, body string) *Widget {
	return newWidget(WidgetTypeText, title, map[string]interface{}{"body": body})
}

// Action is one button on an actions widget. An empty URL disables the button.
type Action struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

func NewActionsWidget(title string, actions []Action) *Widget {
	return newWidget(WidgetTypeActions, title, map[string]interface{}{"actions": actions})
}

// Metric is one labelled counter on a metrics widget. Delta and Description
// are part of the rendered shape even when empty so the frontend can bind
// them unconditionally.
type Metric struct {
	Label       string `json:"label"`
	Value       int64  `json:"value"`
	Delta       string `json:"delta"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

func NewMetricsWidget(title string, metrics []Metric) *Widget {
	return newWidget(WidgetTypeMetrics, title, map[string]interface{}{"metrics": metrics})
}

func NewTableWidget(title string, headers []string, rows [][]string) *Widget {
	return newWidget(WidgetTypeTable, title, map[string]interface{}{
		"headers": headers,
		"rows":    rows,
	})
}

func NewChartWidget(title, chartType string, labels []string, series []int64) *Widget {
	return newWidget(WidgetTypeChart, title, map[string]interface{}{
		"chart_type": chartType,
		"labels":     labels,
		"series":     series,
	})
}

// ListItem is one row of a list widget.
type ListItem struct {
	Label    string `json:"label"`
	Subtitle string `json:"subtitle"`
	URL      string `json:"url,omitempty"`
	Meta     string `json:"meta,omitempty"`
	Icon     string `json:"icon"`
}

func NewListWidget(title string, items []ListItem) *Widget {
	return newWidget(WidgetTypeList, title, map[string]interface{}{
		"items":         items,
		"empty_message": "There is nothing to show here right now.",
	})
}

// NewAnnouncementWidget is a full-width text widget pinned to the top.
func NewAnnouncementWidget(title, body string) *Widget {
	w := NewTextWidget(title, body)
	w.Width = 12
	w.Priority = 1
	return w
}

// NewResourceListWidget is a list widget for downloadable resources.
func NewResourceListWidget(title string, items []ListItem) *Widget {
	w := NewListWidget(title, items)
	w.Priority = 20
	w.Payload["empty_message"] = "No resources available."
	return w
}
