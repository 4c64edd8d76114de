package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("port=%q want=8080", cfg.Port)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("log defaults unexpected: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Fatalf("brokers=%v want empty", cfg.KafkaBrokers)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BANK_NAME", "First Test Bank")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092,")

	cfg := Load()

	if cfg.Port != "9090" || cfg.BankName != "First Test Bank" {
		t.Fatalf("cfg unexpected: %+v", cfg)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "broker1:9092" || cfg.KafkaBrokers[1] != "broker2:9092" {
		t.Fatalf("brokers=%v", cfg.KafkaBrokers)
	}
}
