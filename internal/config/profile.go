// Package config loads named TOON encode/decode presets from a TOML file
// and optionally watches that file for edits. It is host-side convenience
// only — the toon package's Encode/Decode never read or depend on it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tokenware/toon/toon"
)

// Profile is one named EncodeOptions/DecodeOptions pair, as loaded from a
// TOML profiles file.
type Profile struct {
	Indent       int    `toml:"indent"`
	Delimiter    string `toml:"delimiter"`
	LengthMarker *bool  `toml:"length_marker"`
}

// File is the root shape of a profiles TOML document:
//
//	[profiles.compact]
//	indent = 2
//	delimiter = ","
//	length_marker = false
type File struct {
	Profiles map[string]Profile `toml:"profiles"`
}

// EncodeOptions converts p into a toon.EncodeOptions.
func (p Profile) EncodeOptions() *toon.EncodeOptions {
	return &toon.EncodeOptions{
		Indent:       p.Indent,
		Delimiter:    p.Delimiter,
		LengthMarker: p.LengthMarker,
	}
}

// DecodeOptions converts p into a toon.DecodeOptions.
func (p Profile) DecodeOptions() *toon.DecodeOptions {
	return &toon.DecodeOptions{
		Indent:    p.Indent,
		Delimiter: p.Delimiter,
	}
}

// DefaultPath returns the conventional profiles-file location, following
// XDG_CONFIG_HOME when set.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "toon", "profiles.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "toon", "profiles.toml")
}

// LoadProfiles reads and decodes a profiles TOML file at path.
func LoadProfiles(path string) (map[string]Profile, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("config: load profiles from %s: %w", path, err)
	}
	return f.Profiles, nil
}
