package cli

import (
	"os"

	"github.com/rs/zerolog/log"

	"calgrid/internal/config"
	"calgrid/internal/control"
	"calgrid/internal/model"
	"calgrid/internal/storage"
	"calgrid/internal/storage/providers"
)

// loadConfig reads and parses the config file over the defaults for the
// given theme. A missing config file is not an error; all defaults
// apply.
func loadConfig(envData control.EnvData, theme config.ColorschemeType) (config.Config, error) {
	yamlData, err := os.ReadFile(envData.ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", envData.ConfigPath()).Msg("can't read config file, using defaults")
		}
		yamlData = make([]byte, 0)
	}
	return config.ParseConfigAugmentDefaults(theme, yamlData)
}

// loadEvents loads the stored event list along with the provider for
// writing it back.
func loadEvents(envData control.EnvData) (storage.Provider, model.EventList, error) {
	provider := providers.NewFileProvider(envData.EventsPath())
	events, err := provider.Load()
	return provider, events, err
}
