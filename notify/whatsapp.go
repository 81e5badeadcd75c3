package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// WhatsAppSender posts messages through the Twilio Messages API. A nil sender
// means the channel is not configured.
type WhatsAppSender struct {
	accountSID string
	authToken  string
	from       string
	client     *http.Client
	apiBase    string
}

func NewWhatsAppSender(accountSID, authToken, from string) *WhatsAppSender {
	return &WhatsAppSender{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		client:     &http.Client{},
		apiBase:    "https://api.twilio.com",
	}
}

func (w *WhatsAppSender) Send(ctx context.Context, to, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", w.apiBase, w.accountSID)

	form := url.Values{}
	form.Set("From", "whatsapp:"+w.from)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(w.accountSID, w.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Twilio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, string(payload))
	}
	return nil
}
