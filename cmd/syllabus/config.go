package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/errors"
	"github.com/akeil/syllabus/internal/logging"
)

const envPrefix = "SYLLABUS_"

type settings struct {
	DraftDir    string `yaml:"draft_dir"`
	OutDir      string `yaml:"out_dir"`
	LogLevel    string `yaml:"log_level"`
	Institution string `yaml:"institution"`
	Layout      string `yaml:"layout"`
	PageSize    string `yaml:"page_size"`
}

func defaultSettings() settings {
	return settings{
		DraftDir: filepath.Join(dataHome(), "syllabus", "drafts"),
		OutDir:   ".",
		LogLevel: "warning",
		PageSize: "A4",
	}
}

// loadSettings reads the config file at path, or the default location
// if path is empty, and applies overrides from the environment.
// A missing default config file is not an error.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(configHome(), "syllabus", "config.yaml")
	}

	err := readSettings(path, &s)
	if err != nil {
		if explicit || !os.IsNotExist(err) {
			return s, errors.Wrap(err, "read config %q", path)
		}
		logging.Debug("No config file at %q", path)
	}

	s.DraftDir = envString("DRAFT_DIR", s.DraftDir)
	s.OutDir = envString("OUT_DIR", s.OutDir)
	s.LogLevel = envString("LOG_LEVEL", s.LogLevel)
	s.Institution = envString("INSTITUTION", s.Institution)
	s.Layout = envString("LAYOUT", s.Layout)
	s.PageSize = envString("PAGE_SIZE", s.PageSize)

	s.DraftDir = expandHome(s.DraftDir)
	s.OutDir = expandHome(s.OutDir)
	s.Layout = expandHome(s.Layout)
	return s, nil
}

func readSettings(path string, s *settings) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(s)
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

func loadRegistry(s settings) (*syllabus.Registry, error) {
	if s.Layout == "" {
		return syllabus.DefaultRegistry(), nil
	}
	logging.Info("Use form layout from %q", s.Layout)
	return syllabus.LoadRegistryFile(s.Layout)
}

func envString(name, def string) string {
	v := strings.TrimSpace(os.Getenv(envPrefix + name))
	if v == "" {
		return def
	}
	return v
}

func configHome() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d
	}
	return filepath.Join(homeDir(), ".config")
}

func dataHome() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d
	}
	return filepath.Join(homeDir(), ".local", "share")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func expandHome(p string) string {
	if p == "~" {
		return homeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homeDir(), p[2:])
	}
	return p
}
