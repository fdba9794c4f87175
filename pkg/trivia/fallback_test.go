package trivia

import (
	"os"
	"testing"
	"unicode/utf8"
)

func TestSelectFallback(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		port     string
		wantIdx  int
	}{
		{name: "typical deployment", hostname: "abc", port: "8000", wantIdx: 2},
		{name: "defaults for unset env", hostname: "x", port: "0", wantIdx: 2},
		{name: "both empty", hostname: "", port: "", wantIdx: 0},
		{name: "short host standard port", hostname: "host", port: "80", wantIdx: 1},
		{name: "wraps around pool size", hostname: "abcde", port: "80808", wantIdx: 0},
		{name: "long container hostname", hostname: "vesta-7d9f8c6b5-x2kqj", port: "8000", wantIdx: 0},
	}

	pool := FallbackPool()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := SelectFallback(tt.hostname, tt.port)
			if item != pool[tt.wantIdx] {
				t.Errorf("expected pool item %d (%q), got %q", tt.wantIdx, pool[tt.wantIdx].Prompt, item.Prompt)
			}
		})
	}
}

func TestSelectFallback_Stable(t *testing.T) {
	first := SelectFallback("abc", "8000")
	for i := 0; i < 10; i++ {
		if got := SelectFallback("abc", "8000"); got != first {
			t.Fatalf("selection changed between calls: %q vs %q", first.Prompt, got.Prompt)
		}
	}
}

func TestFallbackPool_ItemsWithinCaps(t *testing.T) {
	pool := FallbackPool()
	if len(pool) != 5 {
		t.Fatalf("expected 5 pool items, got %d", len(pool))
	}

	for i, item := range pool {
		if item.Prompt == "" || item.Solution == "" {
			t.Errorf("pool item %d has a blank field", i)
		}
		if n := utf8.RuneCountInString(item.Prompt); n > MaxPromptLen {
			t.Errorf("pool item %d prompt is %d code points, cap is %d", i, n, MaxPromptLen)
		}
		if n := utf8.RuneCountInString(item.Solution); n > MaxSolutionLen {
			t.Errorf("pool item %d solution is %d code points, cap is %d", i, n, MaxSolutionLen)
		}
	}
}

func TestFallbackPool_ReturnsCopy(t *testing.T) {
	pool := FallbackPool()
	pool[0].Prompt = "mutated"

	if FallbackPool()[0].Prompt == "mutated" {
		t.Error("mutating the returned slice changed the built-in pool")
	}
}

func TestEnvIdentity(t *testing.T) {
	t.Run("set values are returned verbatim", func(t *testing.T) {
		t.Setenv("HOSTNAME", "abc")
		t.Setenv("PORT", "8000")

		hostname, port := EnvIdentity()
		if hostname != "abc" || port != "8000" {
			t.Errorf("expected (abc, 8000), got (%s, %s)", hostname, port)
		}
	})

	t.Run("set-but-empty counts as empty", func(t *testing.T) {
		t.Setenv("HOSTNAME", "")
		t.Setenv("PORT", "")

		hostname, port := EnvIdentity()
		if hostname != "" || port != "" {
			t.Errorf("expected empty identity, got (%q, %q)", hostname, port)
		}
	})

	t.Run("unset falls back to defaults", func(t *testing.T) {
		// t.Setenv registers the restore, then the vars are removed so
		// LookupEnv reports them as unset.
		t.Setenv("HOSTNAME", "placeholder")
		t.Setenv("PORT", "placeholder")
		os.Unsetenv("HOSTNAME")
		os.Unsetenv("PORT")

		hostname, port := EnvIdentity()
		if hostname != "x" || port != "0" {
			t.Errorf("expected defaults (x, 0), got (%s, %s)", hostname, port)
		}
	})
}
