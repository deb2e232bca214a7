package config

// DefaultExcludes are glob patterns excluded when loading content overlays.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"*.draft.json",
	"*.bak",
}

// DefaultProxyBase is the public CORS proxy used by the verb lookup page.
const DefaultProxyBase = "https://api.allorigins.win/raw?url="

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:    "devatlas",
		Port:        8640,
		DataDir:     ".devatlas",
		OutputDir:   ".devatlas/site",
		ContentDir:  "",
		Include:     []string{"**/*.json"},
		Exclude:     DefaultExcludes,
		DefaultLang: LangEnglish,
		ProxyBase:   DefaultProxyBase,
		OpenBrowser: false,
	}
}
