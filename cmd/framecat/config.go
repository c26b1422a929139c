package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type config struct {
	Addr     string
	ShowBody bool
}

type fileConfig struct {
	Addr     string `toml:"addr"`
	ShowBody bool   `toml:"show_body"`
}

func defaultConfig() config {
	return config{ShowBody: true}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load framecat config: %w", err)
	}

	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("show_body") {
		cfg.ShowBody = raw.ShowBody
	}

	return cfg, nil
}
