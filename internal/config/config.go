package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	app_errors "acres-chat/internal/errors"
)

// Config holds all startup configuration. RAGFlow credentials, the agent to
// talk to and the dataset holding the research papers are required; everything
// else has a sensible default.
type Config struct {
	AppPort         int    `mapstructure:"APP_PORT"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	RAGFlowAPIKey   string `mapstructure:"RAGFLOW_API_KEY"`
	RAGFlowBaseURL  string `mapstructure:"RAGFLOW_BASE_URL"`
	AgentName       string `mapstructure:"AGENT_NAME"`
	DatasetName     string `mapstructure:"DATASET_NAME"`
	DocumentBaseURL string `mapstructure:"DOCUMENT_BASE_URL"`
	WelcomeMessage  string `mapstructure:"WELCOME_MESSAGE"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("RAGFLOW_BASE_URL", "http://localhost:9380")
	viper.SetDefault("DOCUMENT_BASE_URL", "https://hcux402.teagasc.net/")
	viper.SetDefault("WELCOME_MESSAGE",
		"Hi, I'm your Research Paper Assistant. Ask me any question about published Teagasc Research Papers.")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate enforces the required settings. A missing value here must abort
// startup; the process never runs without its retrieval service identity.
func (c *Config) validate() error {
	switch {
	case c.RAGFlowAPIKey == "":
		return fmt.Errorf("%w: RAGFLOW_API_KEY must be set", app_errors.ErrConfig)
	case c.AgentName == "":
		return fmt.Errorf("%w: AGENT_NAME must be set", app_errors.ErrConfig)
	case c.DatasetName == "":
		return fmt.Errorf("%w: DATASET_NAME must be set", app_errors.ErrConfig)
	}
	return nil
}
