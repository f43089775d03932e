package clubconfig

type Config struct {
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// StoreConfig 描述数据文件位置。文件名是与界面层约定好的外部契约。
type StoreConfig struct {
	DataDir     string `yaml:"data_dir" mapstructure:"data_dir"`
	PlayersFile string `yaml:"players_file" mapstructure:"players_file"`
	SquadsFile  string `yaml:"squads_file" mapstructure:"squads_file"`
	// Cache 打开后使用带文件监听失效的缓存，默认关闭（每次查询都重新读文件）。
	Cache bool `yaml:"cache" mapstructure:"cache"`
}

type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}
