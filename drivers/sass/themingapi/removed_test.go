package themingapi

import (
	"testing"

	"github.com/emenda-labs/themeshift/drivers/sass/symbols"
)

func TestReplaceRemovedVariables(t *testing.T) {
	table := symbols.Mapping{
		"mat-toggle-size":      "20px",
		"mat-toggle-size-alt":  "24px",
		"mat-xsmall":           "max-width: 599px",
		"mat-elevation-prefix": "'mat-elevation-z'",
	}

	tests := []struct {
		name       string
		namespaces []string
		input      string
		want       string
	}{
		{
			name:  "inlines_reference",
			input: ".a { width: $mat-toggle-size; }",
			want:  ".a { width: 20px; }",
		},
		{
			name:  "longest_first",
			input: ".a { width: $mat-toggle-size-alt; height: $mat-toggle-size; }",
			want:  ".a { width: 24px; height: 20px; }",
		},
		{
			name:  "skips_assignment",
			input: "$mat-toggle-size: 10px;\n$mat-xsmall : 1px;\n",
			want:  "$mat-toggle-size: 10px;\n$mat-xsmall : 1px;\n",
		},
		{
			name:  "media_query",
			input: "@media ($mat-xsmall) {}",
			want:  "@media (max-width: 599px) {}",
		},
		{
			name:  "quoted_value",
			input: "$p: $mat-elevation-prefix;",
			want:  "$p: 'mat-elevation-z';",
		},
		{
			name:       "namespaced",
			namespaces: []string{"theming"},
			input:      ".a { width: theming.$mat-toggle-size; }",
			want:       ".a { width: 20px; }",
		},
		{
			name:  "unknown_suffix_untouched",
			input: ".a { width: $mat-toggle-size-custom; }",
			want:  ".a { width: $mat-toggle-size-custom; }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := replaceRemovedVariables(tt.input, table, tt.namespaces, nil)
			if err != nil {
				t.Fatalf("replaceRemovedVariables: %v", err)
			}
			if got != tt.want {
				t.Errorf("replaceRemovedVariables = %q, want %q", got, tt.want)
			}
		})
	}
}
