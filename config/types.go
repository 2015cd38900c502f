package config

// APIConfig contains the upstream WRC API endpoints. Empty URLs fall back
// to the client's built-in defaults.
type APIConfig struct {
	SeasonURL  string `yaml:"seasonURL" validate:"omitempty,url"`
	ResultsURL string `yaml:"resultsURL" validate:"omitempty,url"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
	UserAgent  string `yaml:"userAgent"`
}

// OutputConfig contains the directories CSV exports are written to.
type OutputConfig struct {
	EntriesDir string `yaml:"entriesDir" validate:"required"`
	EventsDir  string `yaml:"eventsDir" validate:"required"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	API    APIConfig    `yaml:"api"`
	Output OutputConfig `yaml:"output" validate:"required"`
	Debug  bool         `yaml:"debug"`
}
