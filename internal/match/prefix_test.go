package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixIndex(t *testing.T) {
	ix := NewPrefixIndex([]string{"apple", "banana", "apricot", "apple", "ape"})

	assert.Equal(t, 4, ix.Len())

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{name: "catalog order not lexical order", prefix: "ap", want: []string{"apple", "apricot", "apple", "ape"}},
		{name: "full key", prefix: "banana", want: []string{"banana"}},
		{name: "duplicates kept per record", prefix: "apple", want: []string{"apple", "apple"}},
		{name: "empty prefix returns everything", prefix: "", want: []string{"apple", "banana", "apricot", "apple", "ape"}},
		{name: "spaces match nothing here", prefix: "   ", want: []string{}},
		{name: "no match", prefix: "z", want: []string{}},
		{name: "longer than any key", prefix: "apples", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.Match(tt.prefix))
		})
	}
}
