package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "EPG_LOG_LEVEL")
	viper.BindEnv("epg.feedUrl", "EPG_FEED_URL")
	viper.BindEnv("epg.autoRefreshInterval", "EPG_AUTO_REFRESH")
	viper.BindEnv("snapshot.filePath", "EPG_SNAPSHOT_PATH")
	viper.BindEnv("cache.enabled", "EPG_CACHE_ENABLED")
	viper.BindEnv("cache.size", "EPG_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "Turksat42E-TVGuide"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
