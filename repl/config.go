package repl

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional `.minilang.yaml` file the REPL looks for in the
// current directory, letting a user restyle the banner/prompt without
// touching code — the teacher hard-codes these as Repl struct literals at
// the call site; Mini-Lang instead loads them, giving the teacher's
// gopkg.in/yaml.v3 dependency (previously pulled in only indirectly,
// through testify) a direct, exercised purpose.
type Config struct {
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	License string `yaml:"license"`
	Prompt  string `yaml:"prompt"`
}

// LoadConfig reads and parses path. A missing file is not an error: it
// reports ok=false so the caller falls back to New()'s defaults.
func LoadConfig(path string) (cfg Config, ok bool, err error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return Config{}, false, nil
		}
		return Config{}, false, readErr
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}

// Apply overrides r's fields with any non-empty value from cfg.
func (r *Repl) Apply(cfg Config) {
	if cfg.Banner != "" {
		r.Banner = cfg.Banner
	}
	if cfg.Version != "" {
		r.Version = cfg.Version
	}
	if cfg.Author != "" {
		r.Author = cfg.Author
	}
	if cfg.License != "" {
		r.License = cfg.License
	}
	if cfg.Prompt != "" {
		r.Prompt = cfg.Prompt
	}
}
