package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJS sends transactional mail through the EmailJS REST API, the same
// service the storefront's contact and subscribe forms use.
type EmailJS struct {
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
	http       *http.Client
}

func NewEmailJS(serviceID, templateID, publicKey string) *EmailJS {
	return &EmailJS{
		endpoint:   defaultEndpoint,
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		http:       &http.Client{},
	}
}

// WithEndpoint overrides the API endpoint (tests).
func (m *EmailJS) WithEndpoint(endpoint string) *EmailJS {
	m.endpoint = endpoint
	return m
}

// Enabled reports whether EmailJS credentials were configured. Sending is
// skipped silently when they are not; mail is a side-effect, never a
// blocker.
func (m *EmailJS) Enabled() bool {
	return m.serviceID != "" && m.templateID != "" && m.publicKey != ""
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (m *EmailJS) Send(ctx context.Context, params map[string]string) error {
	if !m.Enabled() {
		return nil
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      m.serviceID,
		TemplateID:     m.templateID,
		UserID:         m.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := m.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("emailjs: unexpected status %d", res.StatusCode)
	}
	return nil
}
