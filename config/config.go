package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the whole application config
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Contract ContractConfig `mapstructure:"contract"`
	Query    QueryConfig    `mapstructure:"query"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
}

// ContractConfig for the contract JSON-RPC gateway
type ContractConfig struct {
	RPCURL   string        `mapstructure:"rpc_url"`
	Address  string        `mapstructure:"address"`
	From     string        `mapstructure:"from"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Decimals int32         `mapstructure:"decimals"`
}

// QueryConfig for campaign fetching
type QueryConfig struct {
	// BatchPolicy is "partial" (skip failing records) or "strict" (fail the whole fetch)
	BatchPolicy      string `mapstructure:"batch_policy"`
	FetchConcurrency int    `mapstructure:"fetch_concurrency"`
}

// AdminConfig for the identity layer
type AdminConfig struct {
	UserHeader string   `mapstructure:"user_header"`
	Emails     []string `mapstructure:"emails"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	Environment string `mapstructure:"environment"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc.host", "0.0.0.0")
	v.SetDefault("server.grpc.port", 5000)
	v.SetDefault("server.http.host", "0.0.0.0")
	v.SetDefault("server.http.port", 5080)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("contract.timeout", "30s")
	v.SetDefault("contract.decimals", 18)

	v.SetDefault("query.batch_policy", "partial")
	v.SetDefault("query.fetch_concurrency", 8)

	v.SetDefault("admin.user_header", "X-User-Email")

	v.SetDefault("jaeger.environment", "local")
}

func load(v *viper.Viper) Config {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = v.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load loads config.yml from the working directory
func Load() Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")

	conf := load(v)
	fmt.Println("Config Loaded:", conf.Server.HTTP.String())
	return conf
}

// LoadTestConfig loads config.test.yml from the root directory of the module
func LoadTestConfig(rootDir string) Config {
	v := viper.New()
	v.SetConfigFile(path.Join(rootDir, "config.test.yml"))
	return load(v)
}
