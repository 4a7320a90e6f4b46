package store

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantValid bool
		wantPath  string
	}{
		{
			name: "valid file",
			content: `[{"titulo": "a", "descripcion": null, "estado": "PENDING",
				"creacion": "2025-01-01T10:00:00.000Z", "ultimaEdicion": null,
				"vencimiento": "2025-12-01T21:00:00.000Z", "dificultad": 1}]`,
			wantValid: true,
		},
		{
			name:      "empty array",
			content:   `[]`,
			wantValid: true,
		},
		{
			name:      "not an array",
			content:   `{"titulo": "a"}`,
			wantValid: false,
		},
		{
			name: "unknown status",
			content: `[{"titulo": "a", "estado": "DONE",
				"creacion": "2025-01-01T10:00:00.000Z", "dificultad": 1}]`,
			wantValid: false,
			wantPath:  "[0].estado",
		},
		{
			name: "title too long",
			content: `[{"titulo": "a", "estado": "PENDING", "creacion": "2025-01-01T10:00:00Z", "dificultad": 2},
				{"titulo": "` + strings.Repeat("t", 101) + `", "estado": "PENDING",
				"creacion": "2025-01-01T10:00:00Z", "dificultad": 1}]`,
			wantValid: false,
			wantPath:  "[1].titulo",
		},
		{
			name: "bad difficulty",
			content: `[{"titulo": "a", "estado": "PENDING",
				"creacion": "2025-01-01T10:00:00Z", "dificultad": 5}]`,
			wantValid: false,
			wantPath:  "[0].dificultad",
		},
		{
			name:      "invalid json",
			content:   `[`,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Validate([]byte(tt.content))
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if report.Valid != tt.wantValid {
				t.Fatalf("Valid: got %v, want %v (%v)", report.Valid, tt.wantValid, report.Violations)
			}
			if !tt.wantValid && len(report.Violations) == 0 {
				t.Error("expected at least one violation")
			}
			if tt.wantPath == "" {
				return
			}
			for _, v := range report.Violations {
				if v.Path == tt.wantPath {
					return
				}
			}
			t.Errorf("no violation at %s: %v", tt.wantPath, report.Violations)
		})
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"/0", "[0]"},
		{"/3/titulo", "[3].titulo"},
		{"#/a~1b/0/c~0d", "a/b[0].c~d"},
	}
	for _, tt := range tests {
		if got := jsonPointerToPath(tt.ptr); got != tt.want {
			t.Errorf("jsonPointerToPath(%q): got %q, want %q", tt.ptr, got, tt.want)
		}
	}
}

func TestSchemaViolationError(t *testing.T) {
	v := SchemaViolation{Path: "[0].titulo", Message: "length must be <= 100"}
	if got := v.Error(); got != "[0].titulo: length must be <= 100" {
		t.Errorf("Error: got %q", got)
	}
}
