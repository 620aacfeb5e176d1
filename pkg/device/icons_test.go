package device

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func fakeConverter(t *testing.T) string {
	t.Helper()
	tool := filepath.Join(t.TempDir(), "fakeconv")
	script := `#!/bin/sh
out=""
prev=""
for a in "$@"; do
  [ "$prev" = "-o" ] && out="$a"
  prev="$a"
done
echo "$@" > "$out"
`
	if err := os.WriteFile(tool, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return tool
}

// TestConverterAvailable tests binary lookup
func TestConverterAvailable(t *testing.T) {
	logger := hclog.NewNullLogger()

	if NewConverter([]string{"padring-no-such-tool"}, false, logger).Available() {
		t.Error("Available = true for a nonexistent binary")
	}
	if NewConverter(nil, false, logger).Available() {
		t.Error("Available = true for an empty command")
	}
	if !NewConverter([]string{fakeConverter(t)}, false, logger).Available() {
		t.Error("Available = false for an existing tool")
	}
}

// TestConvertIcon tests argument construction including the lefthanded flag
func TestConvertIcon(t *testing.T) {
	testCases := []struct {
		name       string
		lefthanded bool
		wantSuffix string
	}{
		{"righthanded", false, ""},
		{"lefthanded", true, " -l"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tool := fakeConverter(t)
			dir := t.TempDir()
			src := filepath.Join(dir, "3.png")
			dst := filepath.Join(dir, "3.raw")

			conv := NewConverter([]string{tool}, tc.lefthanded, hclog.NewNullLogger())
			if err := conv.ConvertIcon(src, dst); err != nil {
				t.Fatalf("ConvertIcon: %v", err)
			}

			data, err := os.ReadFile(dst)
			if err != nil {
				t.Fatalf("converter produced no output: %v", err)
			}
			want := "-i " + src + " -o " + dst + tc.wantSuffix + "\n"
			if string(data) != want {
				t.Errorf("converter argv = %q, want %q", data, want)
			}
		})
	}
}

// TestGenerateBlank tests the blank-mode invocation
func TestGenerateBlank(t *testing.T) {
	tool := fakeConverter(t)
	dst := filepath.Join(t.TempDir(), "blank.raw")

	conv := NewConverter([]string{tool}, false, hclog.NewNullLogger())
	if err := conv.GenerateBlank(dst); err != nil {
		t.Fatalf("GenerateBlank: %v", err)
	}
	want := "-t  -o " + dst + "\n"
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Errorf("converter argv = %q, want %q", data, want)
	}
}

// TestConvertIconFailure tests that a failing converter surfaces an error
// for the caller to swallow
func TestConvertIconFailure(t *testing.T) {
	tool := filepath.Join(t.TempDir(), "badconv")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\necho boom >&2\nexit 3\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	conv := NewConverter([]string{tool}, false, hclog.NewNullLogger())
	if err := conv.ConvertIcon("a.png", "a.raw"); err == nil {
		t.Error("ConvertIcon succeeded for a failing tool")
	}
}
