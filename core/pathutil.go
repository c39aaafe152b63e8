package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the marker file that identifies a site root.
const ConfigFileName = "oasview.yaml"

// FindSiteRoot walks parent directories starting from start and returns the
// first directory containing an oasview.yaml.
func FindSiteRoot(start string) (string, error) {
	if start == "" {
		return "", fmt.Errorf("empty start path")
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	dir := abs
	for {
		cfgPath := filepath.Join(dir, ConfigFileName)
		if _, statErr := os.Stat(cfgPath); statErr == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%s not found above %s", ConfigFileName, start)
}
