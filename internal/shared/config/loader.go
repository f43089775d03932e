package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Options 控制一次加载的行为。
type Options struct {
	// EnvPrefix 非空时启用环境变量覆盖，例如 CLUB_STORE_DATA_DIR 覆盖 store.data_dir。
	EnvPrefix string
	// Defaults 在文件与环境变量都未设置时生效。
	Defaults map[string]any
}

// Load 把 configPath 指向的文件（为空则只用默认值与环境变量）解码到 out。
func Load(configPath string, out any, opts Options) (*viper.Viper, error) {
	v := viper.New()
	for k, val := range opts.Defaults {
		v.SetDefault(k, val)
	}
	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	if configPath != "" {
		if !fileExist(configPath) {
			return nil, fmt.Errorf("config file not exist, configPath=%v", configPath)
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", configPath, err)
		}
	}

	if err := decode(v, out); err != nil {
		return nil, err
	}
	return v, nil
}

func decode(v *viper.Viper, out any) error {
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(out, hook); err != nil {
		return fmt.Errorf("viper unmarshal config: %w", err)
	}
	return nil
}
