package chart

// Kind identifies a chart type
type Kind string

const (
	// Basic charts
	KindBar     Kind = "bar"
	KindLine    Kind = "line"
	KindArea    Kind = "area"
	KindScatter Kind = "scatter"
	KindPie     Kind = "pie"
	KindDonut   Kind = "donut"

	// Advanced charts
	KindHeatmap   Kind = "heatmap"
	KindTreemap   Kind = "treemap"
	KindSunburst  Kind = "sunburst"
	KindGauge     Kind = "gauge"
	KindFunnel    Kind = "funnel"
	KindSankey    Kind = "sankey"
	KindBoxplot   Kind = "boxplot"
	KindHistogram Kind = "histogram"
)

// KindMetadata carries the static capabilities of a chart kind. Validation and
// the transform pipeline consult it; the renderer is free to ignore it.
type KindMetadata struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	RequiresX           bool   `json:"requires_x"`
	RequiresY           bool   `json:"requires_y"`
	SupportsSeries      bool   `json:"supports_series"`
	SupportsAggregation bool   `json:"supports_aggregation"`
	SupportsColorScale  bool   `json:"supports_color_scale"`
}

// kindOrder fixes the order Kinds emits, basic charts before advanced ones
var kindOrder = []Kind{
	KindBar, KindLine, KindArea, KindScatter, KindPie, KindDonut,
	KindHeatmap, KindTreemap, KindSunburst, KindGauge, KindFunnel,
	KindSankey, KindBoxplot, KindHistogram,
}

var kindMetadata = map[Kind]KindMetadata{
	KindBar:       {Name: "Bar Chart", Description: "Compare values across categories", RequiresX: true, RequiresY: true, SupportsSeries: true, SupportsAggregation: true},
	KindLine:      {Name: "Line Chart", Description: "Show trends over time or categories", RequiresX: true, RequiresY: true, SupportsSeries: true, SupportsAggregation: true},
	KindArea:      {Name: "Area Chart", Description: "Display cumulative trends", RequiresX: true, RequiresY: true, SupportsSeries: true, SupportsAggregation: true},
	KindScatter:   {Name: "Scatter Plot", Description: "Analyze relationships between variables", RequiresX: true, RequiresY: true, SupportsSeries: true, SupportsColorScale: true},
	KindPie:       {Name: "Pie Chart", Description: "Show parts of a whole", RequiresX: true, SupportsAggregation: true},
	KindDonut:     {Name: "Donut Chart", Description: "Show parts of a whole with center space", RequiresX: true, SupportsAggregation: true},
	KindHeatmap:   {Name: "Heatmap", Description: "Display values in a grid with color intensity", RequiresX: true, RequiresY: true, SupportsAggregation: true, SupportsColorScale: true},
	KindTreemap:   {Name: "Treemap", Description: "Hierarchical data with rectangles", RequiresX: true, SupportsAggregation: true, SupportsColorScale: true},
	KindSunburst:  {Name: "Sunburst", Description: "Hierarchical data in circular layout", RequiresX: true, SupportsColorScale: true},
	KindGauge:     {Name: "Gauge Chart", Description: "Show single metric against a scale", RequiresY: true, SupportsAggregation: true},
	KindFunnel:    {Name: "Funnel Chart", Description: "Show progression through stages", RequiresX: true, RequiresY: true, SupportsAggregation: true},
	KindSankey:    {Name: "Sankey Diagram", Description: "Show flow between nodes", RequiresX: true, RequiresY: true},
	KindBoxplot:   {Name: "Box Plot", Description: "Show distribution and outliers", RequiresX: true, RequiresY: true, SupportsSeries: true},
	KindHistogram: {Name: "Histogram", Description: "Show distribution of values", RequiresX: true, SupportsAggregation: true},
}

// MetadataFor returns the static metadata for a kind
func MetadataFor(kind Kind) (KindMetadata, bool) {
	meta, ok := kindMetadata[kind]
	return meta, ok
}

// Kinds returns every known chart kind in declaration order, optionally
// filtered by capability ("series", "aggregation", "colorScale"). An empty
// capability returns all.
func Kinds(capability string) []Kind {
	kinds := make([]Kind, 0, len(kindOrder))
	for _, kind := range kindOrder {
		meta := kindMetadata[kind]
		switch capability {
		case "":
			kinds = append(kinds, kind)
		case "series":
			if meta.SupportsSeries {
				kinds = append(kinds, kind)
			}
		case "aggregation":
			if meta.SupportsAggregation {
				kinds = append(kinds, kind)
			}
		case "colorScale":
			if meta.SupportsColorScale {
				kinds = append(kinds, kind)
			}
		}
	}
	return kinds
}
