package config

// Theme is a complete globe presentation: textures, atmosphere, and the
// colors for each render layer. Served to clients as-is.
type Theme struct {
	Name string `json:"name"`

	// GlobeImage and BumpImage are texture URLs; empty means a solid
	// sphere colored GlobeColor.
	GlobeImage string `json:"globeImage,omitempty"`
	BumpImage  string `json:"bumpImage,omitempty"`
	Background string `json:"background"`

	ShowAtmosphere     bool    `json:"showAtmosphere"`
	AtmosphereColor    string  `json:"atmosphereColor"`
	AtmosphereAltitude float64 `json:"atmosphereAltitude"`

	GlobeColor string `json:"globeColor,omitempty"`

	PolygonFill        string  `json:"polygonFill,omitempty"`
	PolygonStroke      string  `json:"polygonStroke,omitempty"`
	PolygonStrokeWidth float64 `json:"polygonStrokeWidth,omitempty"`

	// ArcColor is a gradient pair: color at the arc start and end.
	ArcColor [2]string `json:"arcColor"`

	PointColor string `json:"pointColor"`
	LabelColor string `json:"labelColor"`
}

const nightSky = "https://unpkg.com/three-globe/example/img/night-sky.png"
const earthTopology = "https://unpkg.com/three-globe/example/img/earth-topology.png"

// Themes holds the built-in globe themes, keyed by the name used in
// ViewConfig.ActiveTheme.
var Themes = map[string]Theme{
	// Classic blue marble Earth
	"realistic": {
		Name:               "Realistic",
		GlobeImage:         "https://unpkg.com/three-globe/example/img/earth-blue-marble.jpg",
		BumpImage:          earthTopology,
		Background:         nightSky,
		ShowAtmosphere:     true,
		AtmosphereColor:    "rgba(100, 180, 255, 0.4)",
		AtmosphereAltitude: 0.15,
		ArcColor:           [2]string{"rgba(255, 100, 50, 0.8)", "rgba(255, 200, 100, 0.3)"},
		PointColor:         "#ffaa00",
		LabelColor:         "rgba(255, 255, 255, 0.9)",
	},

	// Night view with city lights
	"night": {
		Name:               "Night Lights",
		GlobeImage:         "https://unpkg.com/three-globe/example/img/earth-night.jpg",
		BumpImage:          earthTopology,
		Background:         nightSky,
		ShowAtmosphere:     true,
		AtmosphereColor:    "rgba(0, 212, 255, 0.2)",
		AtmosphereAltitude: 0.12,
		ArcColor:           [2]string{"rgba(0, 212, 255, 0.9)", "rgba(0, 212, 255, 0.2)"},
		PointColor:         "#00ff88",
		LabelColor:         "rgba(255, 255, 255, 0.9)",
	},

	// Dark topology
	"dark": {
		Name:               "Dark Topology",
		GlobeImage:         "https://unpkg.com/three-globe/example/img/earth-dark.jpg",
		BumpImage:          earthTopology,
		Background:         nightSky,
		ShowAtmosphere:     true,
		AtmosphereColor:    "rgba(0, 150, 255, 0.15)",
		AtmosphereAltitude: 0.1,
		ArcColor:           [2]string{"rgba(100, 200, 255, 0.8)", "rgba(100, 200, 255, 0.2)"},
		PointColor:         "#00d4ff",
		LabelColor:         "rgba(200, 220, 255, 0.9)",
	},

	// Solid dark sphere with polygon borders
	"minimal": {
		Name:               "Minimal SaaS",
		Background:         nightSky,
		ShowAtmosphere:     true,
		AtmosphereColor:    "rgba(122, 162, 247, 1)",
		AtmosphereAltitude: 0.14,
		GlobeColor:         "#0a0a1a",
		PolygonFill:        "rgba(18, 22, 35, 0.75)",
		PolygonStroke:      "rgba(122, 162, 247, 0.4)",
		PolygonStrokeWidth: 0.3,
		ArcColor:           [2]string{"rgba(122, 162, 247, 0.4)", "rgba(122, 162, 247, 0.1)"},
		PointColor:         "#7aa2f7",
		LabelColor:         "rgba(122, 162, 247, 1)",
	},

	// Wireframe futuristic look
	"hologram": {
		Name:               "Hologram",
		Background:         "#000008",
		ShowAtmosphere:     true,
		AtmosphereColor:    "rgba(0, 255, 200, 0.15)",
		AtmosphereAltitude: 0.2,
		GlobeColor:         "#000510",
		PolygonFill:        "rgba(0, 20, 30, 0.6)",
		PolygonStroke:      "rgba(0, 255, 200, 0.6)",
		PolygonStrokeWidth: 0.5,
		ArcColor:           [2]string{"rgba(0, 255, 200, 1)", "rgba(255, 0, 150, 0.5)"},
		PointColor:         "#ff0088",
		LabelColor:         "rgba(0, 255, 200, 1)",
	},
}

// ThemeByName returns the named theme, falling back to night for
// unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["night"]
}
