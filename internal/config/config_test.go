package config

import (
	"os"
	"testing"
)

func TestParseActors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "single actor",
			input: "A",
			want:  []string{"A"},
		},
		{
			name:  "multiple actors",
			input: "A,B,C",
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "with spaces",
			input: " A , B , C ",
			want:  []string{"A", "B", "C"},
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "empty ID in list",
			input:   "A,,C",
			wantErr: true,
		},
		{
			name:    "duplicate ID",
			input:   "A,B,A",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseActors(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseActors() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Errorf("ParseActors() length = %d, want %d", len(got), len(tt.want))
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseActors()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestProcess_Defaults(t *testing.T) {
	for _, k := range []string{"KEY", "ACTORS", "METRICS_ADDR"} {
		t.Setenv(k, "dummy") // register cleanup, then unset
		os.Unsetenv(k)
	}

	cfg, actors, err := Process()
	if err != nil {
		t.Fatalf("Process() failed: %v", err)
	}
	if cfg.Key != "x" {
		t.Errorf("Expected default key x, got %q", cfg.Key)
	}
	if len(actors) != 3 {
		t.Errorf("Expected 3 default actors, got %v", actors)
	}
}

func TestProcess_TooFewActors(t *testing.T) {
	t.Setenv("ACTORS", "A,B")

	if _, _, err := Process(); err == nil {
		t.Error("Expected error for fewer than 3 actors")
	}
}
