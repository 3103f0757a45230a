package service

import (
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/intervue/platform-api/internal/config"
	"github.com/intervue/platform-api/internal/metrics"
)

// Notifier is the toast/notification surface: fire-and-forget delivery of
// operation outcomes. The collaborator decides how to display them.
type Notifier interface {
	Notify(event string, success bool, message string)
}

type WebhookNotifier struct {
	client *resty.Client
	url    string
	log    *zap.Logger
}

func NewWebhookNotifier(cfg *config.NotifierConfig, log *zap.Logger) *WebhookNotifier {
	client := resty.New().SetTimeout(cfg.Timeout)
	if cfg.APIKey != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}
	return &WebhookNotifier{client: client, url: cfg.WebhookURL, log: log}
}

// Notify posts the outcome asynchronously. Failures are logged, never
// propagated; the HTTP response to the user does not wait on this.
func (n *WebhookNotifier) Notify(event string, success bool, message string) {
	if n.url == "" {
		return
	}
	go func() {
		resp, err := n.client.R().
			SetBody(map[string]any{
				"event":   event,
				"success": success,
				"message": message,
			}).
			Post(n.url)
		if err != nil {
			metrics.NotificationsSent.WithLabelValues("error").Inc()
			n.log.Warn("notification delivery failed", zap.String("event", event), zap.Error(err))
			return
		}
		if !gjson.GetBytes(resp.Body(), "ok").Bool() {
			metrics.NotificationsSent.WithLabelValues("rejected").Inc()
			n.log.Warn("notification rejected",
				zap.String("event", event),
				zap.Int("status", resp.StatusCode()),
				zap.String("reason", gjson.GetBytes(resp.Body(), "error").String()))
			return
		}
		metrics.NotificationsSent.WithLabelValues("ok").Inc()
	}()
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(string, bool, string) {}
