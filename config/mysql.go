package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// MySQLOption is a single DSN parameter
type MySQLOption struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// MySQLConfig for the moderation audit log database
type MySQLConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	Database string `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`

	Options []MySQLOption `mapstructure:"options"`
}

func (c MySQLConfig) driverConfig() *mysql.Config {
	conf := mysql.NewConfig()
	conf.User = c.Username
	conf.Passwd = c.Password
	conf.Net = "tcp"
	conf.Addr = net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
	conf.DBName = c.Database

	if len(c.Options) > 0 {
		conf.Params = make(map[string]string, len(c.Options))
		for _, o := range c.Options {
			conf.Params[o.Key] = o.Value
		}
	}
	return conf
}

// DSN returns the data source name, params are sorted by key
func (c MySQLConfig) DSN() string {
	return c.driverConfig().FormatDSN()
}

// MustConnect connects to database using sqlx
func (c MySQLConfig) MustConnect() *sqlx.DB {
	db := sqlx.MustConnect("mysql", c.DSN())

	fmt.Println("MySQL:", c.Host, c.Database, "MaxOpenConns:", c.MaxOpenConns, "MaxIdleConns:", c.MaxIdleConns)

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	if c.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(c.ConnMaxLifetime)
	}
	return db
}
