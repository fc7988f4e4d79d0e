package brevo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultEndpoint = "https://api.brevo.com"

type contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendRequest struct {
	Sender      contact   `json:"sender"`
	To          []contact `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
}

// BrevoClient sends transactional email through the Brevo SMTP API.
type BrevoClient struct {
	endpoint string
	apiKey   string
	sender   contact
	client   *http.Client
}

func New(endpoint, apiKey, senderName, senderEmail string) *BrevoClient {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &BrevoClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		sender:   contact{Name: senderName, Email: senderEmail},
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (b *BrevoClient) Send(toEmail, toName, subject, htmlContent string) error {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(sendRequest{
		Sender:      b.sender,
		To:          []contact{{Name: toName, Email: toEmail}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}); err != nil {
		return err
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/v3/smtp/email", b.endpoint), &body)
	if err != nil {
		return err
	}
	req.Header.Add("api-key", b.apiKey)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		dumpBytes, err := httputil.DumpResponse(resp, true)
		if err != nil {
			log.WithField("prefix", "brevo").WithError(err).Error("fail to dump response")
		}
		log.WithField("prefix", "brevo").WithField("resp", string(dumpBytes)).Error("error response from brevo")
		return fmt.Errorf("fail to send email: status %d", resp.StatusCode)
	}

	return nil
}
