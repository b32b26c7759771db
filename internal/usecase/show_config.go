package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/acetasks/ace/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
// Fields are ordered to minimize memory padding.
type ShowConfigOutput struct {
	Effective *domain.Config    // Configuration in effect (defaults merged with file)
	File      domain.ConfigInfo // Config file info
	StorePath string            // Resolved store location
	LogPath   string            // Resolved log file
	Keys      []string          // Keys held by the store, sorted (nil if the backend cannot list them)
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	kv            domain.KVStore
	cfg           *domain.Config
	storePath     string
	logPath       string
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, kv domain.KVStore, cfg *domain.Config, storePath, logPath string) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		kv:            kv,
		cfg:           cfg,
		storePath:     storePath,
		logPath:       logPath,
	}
}

// Execute retrieves configuration file information and the keys in the store.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	out := &ShowConfigOutput{
		File:      uc.configManager.Info(),
		Effective: uc.cfg,
		StorePath: uc.storePath,
		LogPath:   uc.logPath,
	}

	lister, ok := uc.kv.(domain.KeyLister)
	if !ok {
		return out, nil
	}
	keys, err := lister.Keys()
	if err != nil {
		return nil, fmt.Errorf("list store keys: %w", err)
	}
	if keys == nil {
		keys = []string{}
	}
	sort.Strings(keys)
	out.Keys = keys
	return out, nil
}
