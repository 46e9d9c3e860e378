package modsexp

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// scanAll drains the scanner up to and including the end marker.
func scanAll(t *testing.T, input string) ([]ScanResult, error) {
	t.Helper()

	sc := NewScanner([]byte(input))
	var results []ScanResult
	for {
		res, err := sc.Scan()
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if res.Kind == ScanEndOfInput {
			return results, nil
		}
	}
}

func TestScannerTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ScanResult
	}{
		{
			name:  "barewords separated by whitespace",
			input: "foo -1.25\tbar\n",
			want: []ScanResult{
				{Kind: ScanToken, Text: "foo"},
				{Kind: ScanToken, Text: "-1.25"},
				{Kind: ScanToken, Text: "bar"},
				{Kind: ScanEndOfInput},
			},
		},
		{
			name:  "parens terminate barewords without consuming them",
			input: "(at -1.4625 0)",
			want: []ScanResult{
				{Kind: ScanListOpen},
				{Kind: ScanToken, Text: "at"},
				{Kind: ScanToken, Text: "-1.4625"},
				{Kind: ScanToken, Text: "0"},
				{Kind: ScanListClose},
				{Kind: ScanEndOfInput},
			},
		},
		{
			name:  "quoted strings",
			input: "(layers \"F.Cu\" \"F.Paste\")",
			want: []ScanResult{
				{Kind: ScanListOpen},
				{Kind: ScanToken, Text: "layers"},
				{Kind: ScanToken, Text: "F.Cu", Quoted: true},
				{Kind: ScanToken, Text: "F.Paste", Quoted: true},
				{Kind: ScanListClose},
				{Kind: ScanEndOfInput},
			},
		},
		{
			name:  "empty quoted string",
			input: "\"\" ",
			want: []ScanResult{
				{Kind: ScanToken, Text: "", Quoted: true},
				{Kind: ScanEndOfInput},
			},
		},
		{
			name:  "quoted string keeps whitespace",
			input: "\"Example Footprint\")",
			want: []ScanResult{
				{Kind: ScanToken, Text: "Example Footprint", Quoted: true},
				{Kind: ScanListClose},
				{Kind: ScanEndOfInput},
			},
		},
		{
			name:  "whitespace only",
			input: " \t\n",
			want: []ScanResult{
				{Kind: ScanEndOfInput},
			},
		},
		{
			name:  "empty input",
			input: "",
			want: []ScanResult{
				{Kind: ScanEndOfInput},
			},
		},
		{
			name:  "nested parens back to back",
			input: "(())",
			want: []ScanResult{
				{Kind: ScanListOpen},
				{Kind: ScanListOpen},
				{Kind: ScanListClose},
				{Kind: ScanListClose},
				{Kind: ScanEndOfInput},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanAll(t, tt.input)
			if err != nil {
				t.Fatalf("Scan() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScannerUnexpectedEOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "truncated quoted string", input: "(layers \"F.C"},
		{name: "input ends inside bareword", input: "(pad smd"},
		{name: "lone bareword at end of input", input: "roundrect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanAll(t, tt.input)
			if !errors.Is(err, ErrUnexpectedEOF) {
				t.Errorf("Scan() error = %v, want ErrUnexpectedEOF", err)
			}
		})
	}
}
