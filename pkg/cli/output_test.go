package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
		want   string
	}{
		{name: "json formatter", format: FormatJSON, want: "*cli.JSONFormatter"},
		{name: "text formatter", format: FormatText, want: "*cli.TextFormatter"},
		{name: "unknown falls back to text", format: OutputFormat("yaml"), want: "*cli.TextFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewFormatter(tt.format)

			switch tt.want {
			case "*cli.JSONFormatter":
				if _, ok := formatter.(*JSONFormatter); !ok {
					t.Errorf("NewFormatter(%q) = %T, want JSONFormatter", tt.format, formatter)
				}
			case "*cli.TextFormatter":
				if _, ok := formatter.(*TextFormatter); !ok {
					t.Errorf("NewFormatter(%q) = %T, want TextFormatter", tt.format, formatter)
				}
			}
		})
	}
}

func TestJSONFormatterFormatTo(t *testing.T) {
	formatter := &JSONFormatter{Indent: true}

	data := map[string]any{
		"total": 2,
		"items": []string{"a", "b"},
	}

	var buf bytes.Buffer
	if err := formatter.FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["total"] != float64(2) {
		t.Errorf("total = %v, want 2", decoded["total"])
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("Indented output should contain indentation")
	}
}

func TestJSONFormatterCompact(t *testing.T) {
	formatter := &JSONFormatter{}

	out, err := formatter.Format(map[string]string{"source": "fallback"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(out) != `{"source":"fallback"}` {
		t.Errorf("Format() = %s, want compact JSON", out)
	}
}

func TestTextFormatterFormatTo(t *testing.T) {
	formatter := &TextFormatter{}

	var buf bytes.Buffer
	if err := formatter.FormatTo(&buf, "3 records"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != "3 records\n" {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), "3 records\n")
	}
}
