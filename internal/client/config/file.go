package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dmitrijs2005/carbid/internal/flagx"
	"github.com/dmitrijs2005/carbid/internal/timex"
)

// FileConfig is the DTO shared by the JSON and TOML loaders. Durations use
// timex.Duration so both formats accept "5s"-style strings.
type FileConfig struct {
	APIBaseURL        string         `json:"api_url" toml:"api_url"`
	PushURL           string         `json:"socket_url" toml:"socket_url"`
	RequestTimeout    timex.Duration `json:"request_timeout" toml:"request_timeout"`
	BidConfirmTimeout timex.Duration `json:"bid_confirm_timeout" toml:"bid_confirm_timeout"`
	DBPath            string         `json:"db_path" toml:"db_path"`
	SessionBackend    string         `json:"session_backend" toml:"session_backend"`
	RedisAddr         string         `json:"redis_addr" toml:"redis_addr"`
	LogLevel          string         `json:"log_level" toml:"log_level"`
	LogFormat         string         `json:"log_format" toml:"log_format"`
	NotifySink        string         `json:"notify_sink" toml:"notify_sink"`
	NotifyLogPath     string         `json:"notify_log" toml:"notify_log"`
	AMQPURL           string         `json:"amqp_url" toml:"amqp_url"`
	NotifyQueue       string         `json:"notify_queue" toml:"notify_queue"`
}

// parseFile overlays cfg with the file named by -c/-config. It panics on
// read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.PushURL, fc.PushURL)
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.BidConfirmTimeout.Duration > 0 {
		cfg.BidConfirmTimeout = fc.BidConfirmTimeout.Duration
	}
	setString(&cfg.DBPath, fc.DBPath)
	setString(&cfg.SessionBackend, fc.SessionBackend)
	setString(&cfg.RedisAddr, fc.RedisAddr)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.NotifySink, fc.NotifySink)
	setString(&cfg.NotifyLogPath, fc.NotifyLogPath)
	setString(&cfg.AMQPURL, fc.AMQPURL)
	setString(&cfg.NotifyQueue, fc.NotifyQueue)
}
