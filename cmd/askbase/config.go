// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/askbase/pkg/types"
)

// newViper prepares a viper instance reading cfgFile (or askbase.yaml from
// the working directory or ~/.config/askbase) and ASKBASE_* environment
// variables. envFile, when it exists, is loaded into the environment first
// without overriding variables already set.
func newViper(cfgFile, envFile string) (*viper.Viper, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "loading %s", envFile)
		}
	}

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("askbase")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "askbase"))
		}
	}

	v.SetEnvPrefix("ASKBASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config")
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	v.SetDefault("knowledge.categories", d.Knowledge.Categories)
	v.SetDefault("knowledge.max_entity", d.Knowledge.MaxEntity)
	v.SetDefault("knowledge.max_answer", d.Knowledge.MaxAnswer)
	v.SetDefault("knowledge.max_entries", d.Knowledge.MaxEntries)
	v.SetDefault("knowledge.overflow", string(d.Knowledge.Overflow))
	v.SetDefault("chat.bot_name", d.Chat.BotName)
	v.SetDefault("chat.user_name", d.Chat.UserName)
	v.SetDefault("chat.knowledge_file", "")
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
}

// loadConfig decodes v into a normalized Config.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var c types.Config
	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "decoding config")
	}
	switch c.Knowledge.Overflow {
	case "", types.OverflowReject, types.OverflowTruncate:
	default:
		return c, errors.WithHint(
			errors.Newf("unknown overflow policy %q", c.Knowledge.Overflow),
			"use reject or truncate")
	}
	c.Normalize()
	return c, nil
}
