package mailer

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the transactional mail relay (Mailjet-compatible
// v3.1 send API) over HTTP with basic auth.
type Client struct {
	BaseURL    string
	APIKey     string
	APISecret  string
	FromEmail  string
	FromName   string
	HTTPClient *http.Client
}

type address struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type message struct {
	From     address   `json:"From"`
	To       []address `json:"To"`
	Subject  string    `json:"Subject"`
	TextPart string    `json:"TextPart"`
	HTMLPart string    `json:"HTMLPart,omitempty"`
}

type sendRequest struct {
	Messages []message `json:"Messages"`
}

type sendResponse struct {
	Messages []struct {
		Status string `json:"Status"`
	} `json:"Messages"`
}

func NewClient(baseURL, apiKey, apiSecret, fromEmail, fromName string) *Client {
	return &Client{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		APISecret: apiSecret,
		FromEmail: fromEmail,
		FromName:  fromName,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send delivers one email to the given recipients. It returns true when
// the relay accepted every message.
func (c *Client) Send(to []string, subject, textBody, htmlBody string) (bool, error) {
	recipients := make([]address, 0, len(to))
	for _, email := range to {
		recipients = append(recipients, address{Email: email})
	}

	requestData := sendRequest{
		Messages: []message{{
			From:     address{Email: c.FromEmail, Name: c.FromName},
			To:       recipients,
			Subject:  subject,
			TextPart: textBody,
			HTMLPart: htmlBody,
		}},
	}

	// Marshal to JSON
	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return false, fmt.Errorf("failed to marshal request data: %w", err)
	}

	// Create request URL
	url := fmt.Sprintf("%s/v3.1/send", c.BaseURL)

	// Create HTTP request
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")

	// Create Basic Auth token
	auth := base64.StdEncoding.EncodeToString([]byte(c.APIKey + ":" + c.APISecret))
	req.Header.Set("Authorization", "Basic "+auth)

	// Send request
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// Read response
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("mail relay returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse response
	var response sendResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return false, fmt.Errorf("failed to parse response: %w", err)
	}

	for _, m := range response.Messages {
		if m.Status != "success" {
			return false, nil
		}
	}

	return true, nil
}
