package configs

import (
	"fmt"
	"github.com/caarlos0/env/v6"
)

type GovernmentBotConfig struct {
	App       App
	Bot       Bot
	DB        DB
	Logger    Logger
	Scheduler Scheduler
}

func LoadGovernmentBotConfig() (GovernmentBotConfig, error) {
	var config GovernmentBotConfig

	if err := env.Parse(&config); err != nil {
		return GovernmentBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
