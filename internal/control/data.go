package control

import (
	"os"
	"path"
	"strings"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
}

// EnvDataFromEnvironment determines the base directory from
// ${CHORDMAP_HOME}, falling back to '${HOME}/.config/chordmap'.
func EnvDataFromEnvironment() EnvData {
	home := os.Getenv("CHORDMAP_HOME")
	if home == "" {
		return EnvData{BaseDirPath: path.Join(os.Getenv("HOME"), ".config", "chordmap")}
	}
	return EnvData{BaseDirPath: strings.TrimRight(home, "/")}
}

// ConfigPath returns the path of the config file within the base directory.
func (e EnvData) ConfigPath() string {
	return path.Join(e.BaseDirPath, "config.yaml")
}
