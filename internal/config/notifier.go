package config

import (
	"os"
	"sync"
	"time"
)

type NotifierConfig struct {
	WebhookURL string
	APIKey     string
	Timeout    time.Duration
}

var (
	notifierConfig *NotifierConfig
	notifierOnce   sync.Once
)

func LoadNotifierConfig() *NotifierConfig {
	notifierOnce.Do(func() {
		timeout := 5 * time.Second
		if raw := os.Getenv("NOTIFIER_TIMEOUT"); raw != "" {
			if d, err := time.ParseDuration(raw); err == nil {
				timeout = d
			}
		}
		notifierConfig = &NotifierConfig{
			WebhookURL: os.Getenv("NOTIFIER_WEBHOOK_URL"),
			APIKey:     os.Getenv("NOTIFIER_API_KEY"),
			Timeout:    timeout,
		}
	})
	return notifierConfig
}
