package installer

import "github.com/sandevgo/daybook/internal/config"

// InstallState is the configuration being assembled by the wizard steps.
type InstallState struct {
	Config config.AppConfig
}

func NewInstallState(defaults config.AppConfig) *InstallState {
	return &InstallState{Config: defaults}
}
