package config

import "fmt"

// ServerListen for listening address
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ServerConfig ...
type ServerConfig struct {
	GRPC ServerListen `mapstructure:"grpc"`
	HTTP ServerListen `mapstructure:"http"`
}

// String for dialing
func (s ServerListen) String() string {
	host := s.Host
	if host == "0.0.0.0" || host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("%s:%d", host, s.Port)
}

// ListenString for listening
func (s ServerListen) ListenString() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
