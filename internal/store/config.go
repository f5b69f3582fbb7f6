package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SheetName   string `yaml:"sheet_name"`
	SheetID     string `yaml:"sheet_id"`
	LogTab      string `yaml:"log_tab"`
	Timezone    string `yaml:"timezone"`
	SkipIfEmpty bool   `yaml:"skip_if_empty"`
	RowSource   string `yaml:"row_source"`
	CSVPath     string `yaml:"csv_path"`
	Email       struct {
		Provider string   `yaml:"provider"`
		From     string   `yaml:"from"`
		To       []string `yaml:"to"`
	} `yaml:"email"`
	Mailgun struct {
		Domain  string `yaml:"domain"`
		APIBase string `yaml:"api_base"`
	} `yaml:"mailgun"`
	SendGrid struct {
		APIBase string `yaml:"api_base"`
	} `yaml:"sendgrid"`
}

func (c *Config) Validate() error {
	if c.RowSource != "SHEETS" && c.RowSource != "CSV" {
		return fmt.Errorf("invalid row_source '%s': must be 'SHEETS' or 'CSV'", c.RowSource)
	}
	if c.RowSource == "CSV" && c.CSVPath == "" {
		return errors.New("csv_path is required when row_source is 'CSV'")
	}
	switch c.Email.Provider {
	case "MAILGUN", "SENDGRID", "NONE":
	default:
		return fmt.Errorf("invalid email provider '%s': must be 'MAILGUN', 'SENDGRID', or 'NONE'", c.Email.Provider)
	}
	if c.Email.Provider != "NONE" {
		if c.Email.From == "" {
			return errors.New("email.from cannot be empty")
		}
		if len(c.Email.To) == 0 {
			return errors.New("email.to cannot be empty")
		}
	}
	if c.Email.Provider == "MAILGUN" && c.Mailgun.Domain == "" {
		return errors.New("mailgun.domain cannot be empty")
	}
	return nil
}

// LoadConfig reads the yaml file at path, then layers environment
// overrides and defaults on top. A missing file is not an error;
// container deployments configure everything through the environment.
func LoadConfig(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	c.applyEnv()

	if c.SheetName == "" {
		c.SheetName = "Trading Log"
	}
	if c.LogTab == "" {
		c.LogTab = "log"
	}
	if c.Timezone == "" {
		c.Timezone = "America/Denver"
	}
	if c.RowSource == "" {
		c.RowSource = "SHEETS"
	}
	if c.Email.Provider == "" {
		c.Email.Provider = "MAILGUN"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SHEET_NAME"); v != "" {
		c.SheetName = v
	}
	if v := os.Getenv("SHEET_ID"); v != "" {
		c.SheetID = v
	}
	if v := os.Getenv("LOG_TAB"); v != "" {
		c.LogTab = v
	}
	if v := os.Getenv("LOCAL_TZ"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("EXIT_IF_EMPTY"); v != "" {
		c.SkipIfEmpty = truthy(v)
	}
	if v := os.Getenv("ROW_SOURCE"); v != "" {
		c.RowSource = v
	}
	if v := os.Getenv("CSV_PATH"); v != "" {
		c.CSVPath = v
	}
	if v := os.Getenv("EMAIL_PROVIDER"); v != "" {
		c.Email.Provider = v
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		c.Email.From = v
	}
	if v := os.Getenv("EMAIL_TO"); v != "" {
		c.Email.To = SplitRecipients(v)
	}
	if v := os.Getenv("MAILGUN_DOMAIN"); v != "" {
		c.Mailgun.Domain = v
	}
	if v := os.Getenv("MAILGUN_BASE_URL"); v != "" {
		c.Mailgun.APIBase = v
	}
	if v := os.Getenv("SENDGRID_BASE_URL"); v != "" {
		c.SendGrid.APIBase = v
	}
}

// SplitRecipients turns a comma-separated address list into a slice,
// trimming whitespace and dropping empty entries.
func SplitRecipients(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
