package control

import (
	"os"
	"strings"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
}

// NewEnvData resolves the environment. CALGRID_HOME overrides the
// default base directory of ~/.config/calgrid.
func NewEnvData() EnvData {
	var envData EnvData

	calgridHome := os.Getenv("CALGRID_HOME")
	if calgridHome == "" {
		envData.BaseDirPath = os.Getenv("HOME") + "/.config/calgrid"
	} else {
		envData.BaseDirPath = strings.TrimRight(calgridHome, "/")
	}

	return envData
}

// EventsPath returns the path of the events file.
func (e EnvData) EventsPath() string {
	return e.BaseDirPath + "/events.json"
}

// ConfigPath returns the path of the configuration file.
func (e EnvData) ConfigPath() string {
	return e.BaseDirPath + "/config.yaml"
}
