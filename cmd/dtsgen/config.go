package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of dtsgen.yaml: defaults for `generate`
// that CLI flags override.
type ProjectConfig struct {
	OutDir       string `yaml:"out_dir"`
	KeepComments bool   `yaml:"keep_comments"`
}

// loadProjectConfig reads dtsgen.yaml from the current directory. Returns
// nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile("dtsgen.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveOutDir applies the fallback chain: explicit --out flag, then
// dtsgen.yaml's out_dir, then "" (write `.d.ts` siblings next to sources).
func resolveOutDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil {
		return cfg.OutDir
	}
	return ""
}

// resolveKeepComments applies the fallback chain: explicit --keep-comments
// flag, then dtsgen.yaml's keep_comments, then false.
func resolveKeepComments(flagSet bool) bool {
	if flagSet {
		return true
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil {
		return cfg.KeepComments
	}
	return false
}
