package level

import (
	_ "embed"
	"os"
	"path/filepath"
)

//go:embed maps/default.txt
var defaultMap []byte

// Resolve loads the map to play. When customPath is given it must load,
// otherwise the error propagates (fatal at startup). With no custom
// path the search order is ~/.gridsnake/maps/default.txt, then
// ./maps/default.txt, then the embedded default map.
func Resolve(customPath string) (*Level, error) {
	if customPath != "" {
		return Load(customPath)
	}

	if userPath := userMapPath("default.txt"); userPath != "" {
		if lvl, err := Load(userPath); err == nil {
			return lvl, nil
		}
	}

	if lvl, err := Load(filepath.Join("maps", "default.txt")); err == nil {
		return lvl, nil
	}

	return Parse(defaultMap)
}

// userMapPath returns the path to a user map file, or empty if home is
// unavailable.
func userMapPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "maps", filename)
}
