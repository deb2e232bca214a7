package config

// Lang identifies a display language for the bilingual pages.
type Lang string

const (
	LangEnglish Lang = "en"
	LangFrench  Lang = "fr"
)

// Config is the top-level devatlas configuration, corresponding to .devatlas.yml.
type Config struct {
	SiteName    string   `yaml:"site_name" koanf:"site_name"`
	Port        int      `yaml:"port" koanf:"port"`
	DataDir     string   `yaml:"data_dir" koanf:"data_dir"`
	OutputDir   string   `yaml:"output_dir" koanf:"output_dir"`
	ContentDir  string   `yaml:"content_dir" koanf:"content_dir"`
	Include     []string `yaml:"include" koanf:"include"`
	Exclude     []string `yaml:"exclude" koanf:"exclude"`
	DefaultLang Lang     `yaml:"default_lang" koanf:"default_lang"`
	ProxyBase   string   `yaml:"proxy_base" koanf:"proxy_base"`
	OpenBrowser bool     `yaml:"open_browser" koanf:"open_browser"`
	AllowAll    bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
