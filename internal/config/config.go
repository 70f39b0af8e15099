package config

import (
	"fmt"
	log "log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DefaultPath is where the daemon looks for settings unless told otherwise.
const DefaultPath = "cluely_config.json"

// The document written on first run. Every key the daemon reads appears here
// with its documented default.
const defaultDocument = `{
  "audio": {
    "listen_duration": 5,
    "silence_threshold": 0.01,
    "duck_playback": false,
    "debug_dir": ""
  },
  "vision": {
    "capture_interval": 10
  },
  "llm": {
    "use_local": true,
    "max_tokens": 150,
    "model": "gpt-5-nano",
    "local_model": "llama3",
    "local_host": "http://localhost:11434"
  },
  "ui": {
    "auto_dismiss_time": 10,
    "chime": "",
    "bus_url": "",
    "console_only": false
  },
  "triggers": {
    "direct_activation": []
  }
}`

// Config is a flat namespaced settings document, addressed with dot paths
// ("audio.listen_duration"). The raw JSON is kept verbatim so keys the daemon
// does not recognise survive a save round trip.
type Config struct {
	path string
	raw  []byte
}

// Load reads the document at path, creating it with defaults when missing.
// A malformed file is logged and replaced by defaults in memory, never
// overwritten on disk.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	c := &Config{path: path, raw: []byte(defaultDocument)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := c.Save(); err != nil {
			log.Warn("cannot write default config", "path", path, "err", err)
		}
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if !gjson.ValidBytes(data) {
		log.Error("config file is not valid JSON, using defaults", "path", path)
		return c, nil
	}
	c.raw = data
	return c, nil
}

func (c *Config) Int(key string, def int) int {
	if v := gjson.GetBytes(c.raw, key); v.Exists() {
		return int(v.Int())
	}
	return def
}

func (c *Config) Float(key string, def float64) float64 {
	if v := gjson.GetBytes(c.raw, key); v.Exists() {
		return v.Float()
	}
	return def
}

func (c *Config) Bool(key string, def bool) bool {
	if v := gjson.GetBytes(c.raw, key); v.Exists() {
		return v.Bool()
	}
	return def
}

func (c *Config) String(key, def string) string {
	if v := gjson.GetBytes(c.raw, key); v.Exists() {
		return v.String()
	}
	return def
}

func (c *Config) Strings(key string) []string {
	var out []string
	for _, v := range gjson.GetBytes(c.raw, key).Array() {
		if s := v.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Set updates one key and persists the whole document.
func (c *Config) Set(key string, value any) error {
	raw, err := sjson.SetBytes(c.raw, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	c.raw = raw
	return c.Save()
}

func (c *Config) Save() error {
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(c.path, c.raw, 0o644)
}

// Dump renders the effective document for the `config` CLI mode.
func (c *Config) Dump() string {
	return gjson.GetBytes(c.raw, "@pretty").String()
}
