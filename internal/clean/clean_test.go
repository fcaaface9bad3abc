package clean

import (
	"reflect"
	"strings"
	"testing"
)

func TestText_StripsEscapeArtifacts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "X Shop", "X Shop"},
		{"double backslash run", `X\\Shop`, "XShop"},
		{"long backslash run", `Lagos\\\\\\Island`, "LagosIsland"},
		{"trailing single backslash", `X Shop\`, "X Shop"},
		{"surrounding whitespace", "  X Shop \t", "X Shop"},
		{"whitespace after strip", ` X Shop\\ `, "X Shop"},
		{"trailing backslash then space", `X Shop\ `, "X Shop"},
		{"alternating tail artifacts", `a\ \ `, "a"},
		{"empty", "", ""},
		{"only artifacts", ` \\\\ `, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestText_NoResidualBackslashRuns(t *testing.T) {
	inputs := []string{`a\\b\\\c\`, `\\`, `\\\`, `trailing\`, `mid\dle\\end\`, `X Shop\ `, `a\ \ `, `b\ \`}
	for _, in := range inputs {
		got := Text(in)
		if strings.Contains(got, `\\`) {
			t.Errorf("Text(%q) = %q still contains a backslash run", in, got)
		}
		if strings.HasSuffix(got, `\`) {
			t.Errorf("Text(%q) = %q still has a trailing backslash", in, got)
		}
		if again := Text(got); again != got {
			t.Errorf("Text not idempotent for %q: first %q, second %q", in, got, again)
		}
	}
}

func TestValue_PreservesStructure(t *testing.T) {
	in := map[string]any{
		"name":    `X\\Shop `,
		"score":   72.0,
		"claimed": true,
		"missing": nil,
		"tags":    []any{` a\\ `, 2.0, nil},
		"nested": map[string]any{
			"bio": `dealer\`,
		},
	}

	got, ok := Value(in).(map[string]any)
	if !ok {
		t.Fatalf("Value returned %T, want map", Value(in))
	}

	if len(got) != len(in) {
		t.Errorf("key count changed: got %d, want %d", len(got), len(in))
	}
	if got["name"] != "XShop" {
		t.Errorf("name = %q, want %q", got["name"], "XShop")
	}
	if got["score"] != 72.0 {
		t.Errorf("numeric leaf changed: %v", got["score"])
	}
	if got["claimed"] != true {
		t.Errorf("boolean leaf changed: %v", got["claimed"])
	}
	if got["missing"] != nil {
		t.Errorf("nil leaf changed: %v", got["missing"])
	}

	tags, ok := got["tags"].([]any)
	if !ok || len(tags) != 3 {
		t.Fatalf("array length changed: %v", got["tags"])
	}
	if tags[0] != "a" || tags[1] != 2.0 || tags[2] != nil {
		t.Errorf("array contents wrong: %v", tags)
	}

	nested, ok := got["nested"].(map[string]any)
	if !ok || nested["bio"] != "dealer" {
		t.Errorf("nested object wrong: %v", got["nested"])
	}
}

func TestValue_Idempotent(t *testing.T) {
	in := map[string]any{
		"name": ` X\\Shop\ `,
		"list": []any{`a\\`, map[string]any{"k": `v\`}},
	}

	once := Value(in)
	twice := Value(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Value is not idempotent:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}

func TestValue_NilAndScalars(t *testing.T) {
	if Value(nil) != nil {
		t.Error("Value(nil) should be nil, not empty string")
	}
	if Value(42.0) != 42.0 {
		t.Error("numbers must never be stringified")
	}
	if Value(false) != false {
		t.Error("booleans must pass through")
	}
}
