package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to devatlas! Let's set up your reference site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = name

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Default language for the bilingual pages.
	langPrompt := promptui.Select{
		Label: "Default language for bilingual pages",
		Items: []string{"en — English", "fr — Français"},
	}
	idx, _, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	if idx == 1 {
		cfg.DefaultLang = LangFrench
	} else {
		cfg.DefaultLang = LangEnglish
	}

	// 4. Extra content directory (optional overlay on the bundled catalog).
	dirPrompt := promptui.Prompt{
		Label:   "Extra content directory (empty for bundled content only)",
		Default: "",
	}
	dir, err := dirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	cfg.ContentDir = dir

	// 5. Open browser on serve.
	openPrompt := promptui.Select{
		Label: "Open browser automatically when serving",
		Items: []string{"yes", "no"},
	}
	openIdx, _, err := openPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("open browser selection: %w", err)
	}
	cfg.OpenBrowser = openIdx == 0

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
