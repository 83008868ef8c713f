package config

import (
	"testing"
	"time"
)

func TestMustLoad(t *testing.T) {
	cfg := MustLoad("./test_data/config.yaml")

	if cfg.API.BaseURL != "http://backend:8081/api" {
		t.Errorf("api.base_url, got: %s, want: %s", cfg.API.BaseURL, "http://backend:8081/api")
	}
	if cfg.API.Timeout.Std() != 5*time.Second {
		t.Errorf("api.timeout, got: %s, want: %s", cfg.API.Timeout.Std(), 5*time.Second)
	}
	if cfg.Chat.URL != "ws://backend:8081/ws/chat" {
		t.Errorf("chat.url, got: %s, want: %s", cfg.Chat.URL, "ws://backend:8081/ws/chat")
	}
	if cfg.State.Dir != "/var/lib/quill" {
		t.Errorf("state.dir, got: %s, want: %s", cfg.State.Dir, "/var/lib/quill")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level, got: %s, want: %s", cfg.Log.Level, "debug")
	}
	if !cfg.Log.JSON {
		t.Errorf("log.json, got: false, want: true")
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Errorf("metrics.addr, got: %s, want: %s", cfg.Metrics.Addr, ":9100")
	}
}

func TestMustLoadDefaults(t *testing.T) {
	cfg := MustLoad("./test_data/minimal.yaml")

	if cfg.API.BaseURL != defaultBaseURL {
		t.Errorf("api.base_url default, got: %s, want: %s", cfg.API.BaseURL, defaultBaseURL)
	}
	if cfg.API.Timeout != defaultTimeout {
		t.Errorf("api.timeout default, got: %v, want: %v", cfg.API.Timeout, defaultTimeout)
	}
	if cfg.Chat.URL != defaultChatURL {
		t.Errorf("chat.url default, got: %s, want: %s", cfg.Chat.URL, defaultChatURL)
	}
	if cfg.Metrics.Addr != "" {
		t.Errorf("metrics.addr default, got: %s, want empty", cfg.Metrics.Addr)
	}
}

func TestMustLoadMissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for missing config file")
		}
	}()
	MustLoad("./test_data/does_not_exist.yaml")
}
