// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "INIUTIL"

	// Config keys. Each is also a persistent flag and an INIUTIL_ variable.
	cfgKeyOutput  = "output"
	cfgKeyBackend = "backend"
	cfgKeyVerbose = "verbose"
)

// loadConfig reads config.yaml into v. An explicitly named file must exist;
// a missing file in the default location is not an error.
func loadConfig(v *viper.Viper, configFile, configDir string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}

	if configDir == "" {
		userDir, err := os.UserConfigDir()
		if err != nil {
			// No home directory: run with flags and environment only.
			return nil
		}
		configDir = filepath.Join(userDir, "iniutil")
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
