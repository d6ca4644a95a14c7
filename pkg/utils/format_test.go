package utils

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatDescription(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		want        template.HTML
	}{
		{
			name:        "Empty",
			description: "",
			want:        "",
		},
		{
			name:        "LineBreaksBecomeTags",
			description: "first line\nsecond line",
			want:        "first line<br>second line",
		},
		{
			name:        "MarkupIsEscaped",
			description: "<script>alert(1)</script>\nok",
			want:        "&lt;script&gt;alert(1)&lt;/script&gt;<br>ok",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatDescription(tc.description))
		})
	}
}
