//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

const defaultHTTPBase = "http://localhost:5000"

type httpClient struct {
	baseURL string
	client  *http.Client
}

func newHTTPClient() *httpClient {
	base := os.Getenv("CONTACT_API_HTTP_URL")
	if base == "" {
		base = defaultHTTPBase
	}
	return &httpClient{
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *httpClient) postJSON(t *testing.T, path string, body any) (*http.Response, []byte) {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("new request failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		t.Fatalf("http request failed: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response failed: %v", err)
	}
	return resp, bodyBytes
}

func (c *httpClient) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := c.client.Get(c.baseURL + path)
	if err != nil {
		t.Fatalf("http request failed: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response failed: %v", err)
	}
	return resp, bodyBytes
}

func waitForHTTP(baseURL string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 2 * time.Second}
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/api/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("contact api not ready at %s", baseURL)
}

func TestMain(m *testing.M) {
	client := newHTTPClient()
	if err := waitForHTTP(client.baseURL, 30*time.Second); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func validSubmission() map[string]string {
	return map[string]string{
		"name":     "María García",
		"email":    "maria@example.org",
		"company":  "Fundación Ejemplo",
		"phone":    "+34 600 000 000",
		"category": "help",
		"urgency":  "high",
		"message":  "Mensaje de prueba e2e.",
	}
}

func TestContactDelivered(t *testing.T) {
	client := newHTTPClient()

	resp, body := client.postJSON(t, "/api/contact", validSubmission())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			Category  string `json:"category"`
			Urgency   string `json:"urgency"`
			MessageID string `json:"messageId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !payload.Success {
		t.Fatalf("expected success envelope: %s", body)
	}
	if payload.Data.Category != "Solicitar ayuda para jóvenes en riesgo" {
		t.Fatalf("unexpected category: %q", payload.Data.Category)
	}
	if payload.Data.Urgency != "Urgente - Respuesta en 24h" {
		t.Fatalf("unexpected urgency: %q", payload.Data.Urgency)
	}
	if payload.Data.MessageID == "" {
		t.Fatalf("expected a messageId")
	}
}

func TestContactMissingCompany(t *testing.T) {
	client := newHTTPClient()

	sub := validSubmission()
	delete(sub, "company")
	resp, body := client.postJSON(t, "/api/contact", sub)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "Campos requeridos faltantes: company") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestContactInvalidEmail(t *testing.T) {
	client := newHTTPClient()

	sub := validSubmission()
	sub["email"] = "not-an-email"
	resp, body := client.postJSON(t, "/api/contact", sub)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "Formato de email inválido") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestHealth(t *testing.T) {
	client := newHTTPClient()

	resp, body := client.get(t, "/api/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.Status != "healthy" || payload.Service != "AURA Contact API" {
		t.Fatalf("unexpected health payload: %s", body)
	}
}

func TestUnknownRoute(t *testing.T) {
	client := newHTTPClient()

	resp, body := client.get(t, "/api/unknown")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "Ruta no encontrada") {
		t.Fatalf("unexpected body: %s", body)
	}
}
