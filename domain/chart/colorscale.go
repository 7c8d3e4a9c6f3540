package chart

// ScaleName identifies a predefined color scale
type ScaleName string

const (
	// Sequential
	ScaleBlues   ScaleName = "blues"
	ScaleGreens  ScaleName = "greens"
	ScaleReds    ScaleName = "reds"
	ScaleGreys   ScaleName = "greys"
	ScalePurples ScaleName = "purples"

	// Diverging
	ScaleRedBlue  ScaleName = "red-blue"
	ScaleCoolWarm ScaleName = "cool-warm"

	// Categorical
	ScaleCategory ScaleName = "category"
	ScaleDark     ScaleName = "dark"
	ScaleLight    ScaleName = "light"
	ScalePastel   ScaleName = "pastel"
	ScaleVibrant  ScaleName = "vibrant"
)

// ScaleMetadata carries the display name and color stops of a scale
type ScaleMetadata struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

var scaleMetadata = map[ScaleName]ScaleMetadata{
	ScaleBlues:    {Name: "Blues (Sequential)", Colors: []string{"#f7fbff", "#08519c"}},
	ScaleGreens:   {Name: "Greens (Sequential)", Colors: []string{"#f7fcf5", "#00441b"}},
	ScaleReds:     {Name: "Reds (Sequential)", Colors: []string{"#fff5f0", "#67000d"}},
	ScaleGreys:    {Name: "Greys (Sequential)", Colors: []string{"#ffffff", "#000000"}},
	ScalePurples:  {Name: "Purples (Sequential)", Colors: []string{"#fcf0f5", "#49006a"}},
	ScaleRedBlue:  {Name: "Red-Blue (Diverging)", Colors: []string{"#d73027", "#4575b4"}},
	ScaleCoolWarm: {Name: "Cool-Warm (Diverging)", Colors: []string{"#3b4cc0", "#f7f7f7", "#b40426"}},
	ScaleCategory: {Name: "Category (Categorical)", Colors: []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728"}},
	ScaleDark:     {Name: "Dark (Categorical)", Colors: []string{"#1a1a1a", "#333333", "#666666", "#999999"}},
	ScaleLight:    {Name: "Light (Categorical)", Colors: []string{"#e6e6e6", "#cccccc", "#b3b3b3", "#999999"}},
	ScalePastel:   {Name: "Pastel (Categorical)", Colors: []string{"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4"}},
	ScaleVibrant:  {Name: "Vibrant (Categorical)", Colors: []string{"#e41a1c", "#377eb8", "#4daf4a", "#984ea3"}},
}

// ScaleFor returns the metadata for a named scale
func ScaleFor(name ScaleName) (ScaleMetadata, bool) {
	meta, ok := scaleMetadata[name]
	return meta, ok
}
