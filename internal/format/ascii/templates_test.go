package ascii

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "short title unchanged",
			title: "Backpack",
			want:  "Backpack",
		},
		{
			name:  "long title shortened",
			title: strings.Repeat("a", 60),
			want:  strings.Repeat("a", 47) + "...",
		},
		{
			name:  "multi-byte title counts runes",
			title: strings.Repeat("ü", 60),
			want:  strings.Repeat("ü", 47) + "...",
		},
		{
			name:  "multi-byte title under the limit unchanged",
			title: strings.Repeat("日", 50),
			want:  strings.Repeat("日", 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.title)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestFormatter_FormatProducts(t *testing.T) {
	f := NewFormatter()

	out, err := f.FormatProducts([]domain.Product{
		{ID: 1, Title: strings.Repeat("é", 60), Category: "electronics", Price: 9.99},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Products (1):")
	assert.Contains(t, out, strings.Repeat("é", 47)+"...")
	assert.True(t, utf8.ValidString(out))
}
