// Package config registers the engine settings with viper and reads them
// from darcula.toml, DARCULA_* variables and bound CLI flags.
package config

import (
	"errors"
	"strings"

	"github.com/darcula-go/darcula/constant"
	"github.com/darcula-go/darcula/filesystem"
	"github.com/darcula-go/darcula/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to the suffix of their variable, theme.name -> THEME_NAME.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads the config file if
// there is one. It also makes sure the user theme directory exists, since
// files dropped there shadow the builtin property sources.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Darcula)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	bindEnv()
	registerDefaults()
	_ = where.Themes()

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}

func bindEnv() {
	viper.SetEnvPrefix(constant.Darcula)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)

	for _, k := range EnvExposed {
		viper.MustBindEnv(k)
	}
}

func registerDefaults() {
	viper.SetTypeByDefaultValue(true)

	for k, field := range Default {
		viper.SetDefault(k, field.Value)
	}
}
