package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ChatAddr string `envconfig:"CHAT_SERVER_ADDR" default:"localhost:9092"`
	AuthAddr string `envconfig:"AUTH_SERVER_ADDR" default:"localhost:9091"`
	Username string `envconfig:"CHAT_USERNAME" required:"true"`
	Password string `envconfig:"CHAT_PASSWORD" required:"true"`
	// CHAT_COLOURS enables colorized output
	Colours bool `envconfig:"CHAT_COLOURS" default:"true"`
	// LISTEN_TIMEOUT bounds how long send waits for the server echo
	ListenTimeout time.Duration `envconfig:"LISTEN_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
