package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigEnvOnly(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "MAILGUN")
	t.Setenv("EMAIL_FROM", "alerts@example.com")
	t.Setenv("EMAIL_TO", " a@example.com, b@example.com ,")
	t.Setenv("MAILGUN_DOMAIN", "mg.example.com")
	t.Setenv("EXIT_IF_EMPTY", "Yes")

	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.SheetName != "Trading Log" || c.LogTab != "log" {
		t.Errorf("sheet defaults = %q/%q, want Trading Log/log", c.SheetName, c.LogTab)
	}
	if c.Timezone != "America/Denver" {
		t.Errorf("timezone default = %q, want America/Denver", c.Timezone)
	}
	if !c.SkipIfEmpty {
		t.Error("EXIT_IF_EMPTY=Yes should enable skip_if_empty")
	}
	want := []string{"a@example.com", "b@example.com"}
	if !reflect.DeepEqual(c.Email.To, want) {
		t.Errorf("recipients = %v, want %v", c.Email.To, want)
	}
}

func TestLoadConfigFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
sheet_name: Paper Log
timezone: UTC
row_source: CSV
csv_path: testdata/log.csv
email:
  provider: NONE
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOCAL_TZ", "America/New_York")

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.SheetName != "Paper Log" {
		t.Errorf("sheet_name = %q, want Paper Log", c.SheetName)
	}
	if c.Timezone != "America/New_York" {
		t.Errorf("timezone = %q, want env override America/New_York", c.Timezone)
	}
	if c.RowSource != "CSV" || c.CSVPath != "testdata/log.csv" {
		t.Errorf("row source = %q/%q", c.RowSource, c.CSVPath)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		c := &Config{
			SheetName: "Trading Log",
			LogTab:    "log",
			Timezone:  "America/Denver",
			RowSource: "SHEETS",
		}
		c.Email.Provider = "MAILGUN"
		c.Email.From = "alerts@example.com"
		c.Email.To = []string{"a@example.com"}
		c.Mailgun.Domain = "mg.example.com"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid mailgun", func(c *Config) {}, false},
		{"bad row source", func(c *Config) { c.RowSource = "DB" }, true},
		{"csv without path", func(c *Config) { c.RowSource = "CSV" }, true},
		{"csv with path", func(c *Config) { c.RowSource = "CSV"; c.CSVPath = "log.csv" }, false},
		{"bad provider", func(c *Config) { c.Email.Provider = "SES" }, true},
		{"none needs no addresses", func(c *Config) {
			c.Email.Provider = "NONE"
			c.Email.From = ""
			c.Email.To = nil
		}, false},
		{"missing from", func(c *Config) { c.Email.From = "" }, true},
		{"missing recipients", func(c *Config) { c.Email.To = nil }, true},
		{"mailgun without domain", func(c *Config) { c.Mailgun.Domain = "" }, true},
		{"sendgrid ignores mailgun domain", func(c *Config) {
			c.Email.Provider = "SENDGRID"
			c.Mailgun.Domain = ""
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitRecipients(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a@example.com", []string{"a@example.com"}},
		{"a@example.com,b@example.com", []string{"a@example.com", "b@example.com"}},
		{" a@example.com , ,b@example.com,", []string{"a@example.com", "b@example.com"}},
		{"", nil},
		{" , ", nil},
	}
	for _, tt := range tests {
		if got := SplitRecipients(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitRecipients(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
