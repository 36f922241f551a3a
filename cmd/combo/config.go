package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
)

const envPrefix = "COMBO"

var log = commonlog.GetLogger("combo.cli")

// loadConfig resolves the flags of cmd. A flag set on the command line wins
// over a COMBO_* environment variable, which wins over the file named by
// --config, which wins over the flag default.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	conf := viper.New()
	for _, flags := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		if err := conf.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	if cfg := conf.GetString("config"); cfg != "" {
		conf.SetConfigFile(cfg)
		if err := conf.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		log.Debugf("%s: using config file %s", cmd.Name(), cfg)
	}
	return conf, nil
}

func configureLogging(conf *viper.Viper) {
	var path *string
	if logFile := conf.GetString("log-file"); logFile != "" {
		path = &logFile
	}
	commonlog.Configure(conf.GetInt("verbose"), path)
}

// requireString returns the configured value of key, or an error naming the
// flag when it is unset everywhere.
func requireString(conf *viper.Viper, key string) (string, error) {
	v := conf.GetString(key)
	if v == "" {
		return "", fmt.Errorf("--%s is required (or set %s_%s)", key, envPrefix, strings.ToUpper(strings.ReplaceAll(key, "-", "_")))
	}
	return v, nil
}
