package clubconfig

import (
	"path/filepath"

	"SimplyRugby/internal/shared/config"
)

const (
	defaultConfigRelPath = "configs/conf.yml"
	envPrefix            = "CLUB"
)

func defaults() map[string]any {
	return map[string]any{
		"store.data_dir":     "data",
		"store.players_file": "players.json",
		"store.squads_file":  "squads.json",
		"store.cache":        false,
		"log.level":          "info",
		"log.file_dir":       "",
		"log.max_size":       10,
		"log.max_backups":    3,
		"log.max_age":        7,
		"log.compress":       false,
		"log.dev":            false,
		"metrics.enabled":    false,
	}
}

// Load 读取配置：显式路径 > 向上查找 configs/conf.yml > 仅默认值；环境变量 CLUB_* 覆盖文件。
// 找到配置文件时，相对的 store.data_dir 以配置所在的项目根目录为基准，否则以当前目录为基准。
func Load(cfgName string) (Config, error) {
	var conf Config
	path := config.Resolve(cfgName, defaultConfigRelPath)
	if _, err := config.Load(path, &conf, config.Options{
		EnvPrefix: envPrefix,
		Defaults:  defaults(),
	}); err != nil {
		return Config{}, err
	}
	if path != "" && !filepath.IsAbs(conf.Store.DataDir) {
		conf.Store.DataDir = filepath.Join(rootOf(path), conf.Store.DataDir)
	}
	return conf, nil
}

// rootOf 返回 <root>/configs/conf.yml 中的 <root>；配置不在 configs/ 下时取其所在目录。
func rootOf(path string) string {
	dir := filepath.Dir(path)
	if filepath.Base(dir) == filepath.Base(filepath.Dir(defaultConfigRelPath)) {
		return filepath.Dir(dir)
	}
	return dir
}
