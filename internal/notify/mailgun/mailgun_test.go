package mailgun

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JSPierceColorado/Trade-Notify/internal/store"
)

func testConfig(apiBase string) *store.Config {
	cfg := &store.Config{}
	cfg.Email.From = "alerts@example.com"
	cfg.Email.To = []string{"one@example.com", "two@example.com"}
	cfg.Mailgun.Domain = "mg.example.com"
	cfg.Mailgun.APIBase = apiBase
	return cfg
}

func TestSendPostsMessage(t *testing.T) {
	var (
		gotPath string
		gotUser string
		form    map[string][]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotPath = r.URL.Path
		gotUser, _, _ = r.BasicAuth()
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Queued. Thank you.",
			"id":      "<1@mg.example.com>",
		})
	}))
	defer srv.Close()

	t.Setenv("MAILGUN_API_KEY", "key-test")
	n := NewNotifier(testConfig(srv.URL + "/v3"))

	if err := n.Send(context.Background(), "bought 1 stocks, sold $113.64 profit", "&nbsp;"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if gotPath != "/v3/mg.example.com/messages" {
		t.Errorf("path = %q, want /v3/mg.example.com/messages", gotPath)
	}
	if gotUser != "api" {
		t.Errorf("basic auth user = %q, want api", gotUser)
	}
	if got := form["subject"]; len(got) != 1 || got[0] != "bought 1 stocks, sold $113.64 profit" {
		t.Errorf("subject = %v", got)
	}
	if got := form["html"]; len(got) != 1 || got[0] != "&nbsp;" {
		t.Errorf("html = %v", got)
	}
	if got := form["text"]; len(got) != 1 || got[0] != " " {
		t.Errorf("text = %v", got)
	}
	if got := form["to"]; len(got) != 2 {
		t.Errorf("to = %v, want 2 recipients", got)
	}
}

func TestSendSurfacesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "'from' parameter is missing"})
	}))
	defer srv.Close()

	t.Setenv("MAILGUN_API_KEY", "key-test")
	n := NewNotifier(testConfig(srv.URL + "/v3"))

	err := n.Send(context.Background(), "subject", "&nbsp;")
	if err == nil {
		t.Fatal("Send succeeded, want provider error")
	}
	if !strings.Contains(err.Error(), "mailgun send failed") {
		t.Errorf("error = %v, want mailgun send failed", err)
	}
}

func TestSendMissingAPIKey(t *testing.T) {
	t.Setenv("MAILGUN_API_KEY", "")
	n := NewNotifier(testConfig(""))
	if err := n.Send(context.Background(), "subject", "&nbsp;"); err == nil {
		t.Fatal("Send succeeded without MAILGUN_API_KEY, want error")
	}
}
