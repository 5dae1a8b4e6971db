// Package slacknotifier delivers status-change messages to a Slack incoming webhook.
package slacknotifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"

	"github.com/bnema/beacon/internal/domain"
)

// DefaultTimeout bounds one webhook delivery.
const DefaultTimeout = 10 * time.Second

// Notifier posts `{"text": "..."}` to an incoming webhook URL.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// Option configures the Notifier.
type Option func(*Notifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(n *Notifier) {
		n.client = client
	}
}

// New creates a webhook notifier. webhookURL is required.
func New(webhookURL string, opts ...Option) (*Notifier, error) {
	if webhookURL == "" {
		return nil, fmt.Errorf("%w: webhook url is required", domain.ErrInvalidConfig)
	}

	n := &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Notify sends one message. It does not retry.
func (n *Notifier) Notify(ctx context.Context, url string, classification domain.Classification) error {
	msg := &slack.WebhookMessage{
		Text: domain.StatusMessage(url, classification),
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.client, msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}
	return nil
}
