/*
Copyright 2026 The sql-aide Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package helper

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/TDress/sql-aide/pkg/config"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config binds command line flags and environment variables to viper.
type Config struct {
	Name  string
	CfgFn string
}

// Init makes NAME_<FLAG> environment variables override flag defaults.
func (c *Config) Init(name string) {
	c.Name = name
	viper.SetEnvPrefix(strings.ToUpper(name))
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// BindFlags makes the values of flags available through viper.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	if err := viper.BindPFlags(flags); err != nil {
		return err
	}
	c.CfgFn = viper.GetString("config")
	return nil
}

// LoadConfig binds the flags of cmd, including inherited ones.
func (c *Config) LoadConfig(cmd *cobra.Command) error {
	return c.BindFlags(cmd.Flags())
}

// SettingsPaths lists the folders searched for the settings file when no
// file is given.
func SettingsPaths(name string) ([]string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	paths := []string{".", filepath.Join(home, "."+name)}
	if runtime.GOOS != "windows" {
		paths = append(paths, filepath.Join("/etc", name))
	}
	return paths, nil
}

// SettingsViper returns a viper instance reading the connection settings,
// either from file or from the first settings file found in SettingsPaths.
// It is separate from the global instance so that writing the settings
// back never leaks flags into the file.
func SettingsViper(name, file string) (*viper.Viper, error) {
	v := viper.New()
	if file != "" {
		expanded, err := homedir.Expand(file)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(expanded)
		return v, nil
	}

	paths, err := SettingsPaths(name)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName(strings.TrimSuffix(config.DefaultSettingsFile, filepath.Ext(config.DefaultSettingsFile)))
	return v, nil
}
