package configs

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App       `mapstructure:"app"`
	Session   `mapstructure:"session"`
	Redis     `mapstructure:"redis"`
	Postgres  `mapstructure:"postgres"`
	Chain     `mapstructure:"chain"`
	Analytics `mapstructure:"analytics"`
	Cities    []City `mapstructure:"cities"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Session struct - conversation session storage settings.
// A zero TimeoutMinutes signals the application layer to apply its default.
type Session struct {
	Backend        string `mapstructure:"backend"`
	TimeoutMinutes int    `mapstructure:"timeout_minutes"`
}

// Redis struct
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Postgres struct
type Postgres struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// Chain struct - restaurant chain identity and knowledge seed location
type Chain struct {
	Name          string `mapstructure:"name"`
	KnowledgeFile string `mapstructure:"knowledge_file"`
}

// Analytics struct
type Analytics struct {
	ExportDir string `mapstructure:"export_dir"`
}

// City struct - one serviced city with its outlet display names.
// Declared as a list so the configured order is preserved in chat options.
type City struct {
	Name      string   `mapstructure:"name"`
	Locations []string `mapstructure:"locations"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}
