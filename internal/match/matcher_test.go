package match

import (
	"testing"

	"github.com/Veraticus/getitem/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatioMatcher_RankOrdersByRatio(t *testing.T) {
	// Ratios against "bcde": abcd 0.75, bcdx 0.75, bxxx 0.25, wxyz 0.
	keys := []string{"wxyz", "bxxx", "abcd", "bcdx"}

	got := RatioMatcher{}.Rank("bcde", keys, 10)

	assert.Equal(t, []string{"abcd", "bcdx", "bxxx", "wxyz"}, got)
}

func TestRatioMatcher_ExactKeyRanksFirst(t *testing.T) {
	keys := []string{"apricot", "apples", "apple"}

	got := RatioMatcher{}.Rank("apple", keys, 1)

	assert.Equal(t, []string{"apple"}, got)
}

func TestRatioMatcher_Rank(t *testing.T) {
	m := RatioMatcher{}
	keys := []string{"banana", "apricot", "apple"}

	assert.Equal(t, []string{"apple", "apricot", "banana"}, m.Rank("ap", keys, 20))
	assert.Equal(t, []string{"apple"}, m.Rank("ap", keys, 1))
	assert.Nil(t, m.Rank("ap", keys, 0))
	assert.Nil(t, m.Rank("ap", nil, 5))
}

func TestRatioMatcher_TiesKeepInputOrder(t *testing.T) {
	m := RatioMatcher{}

	assert.Equal(t, []string{"xa", "ya"}, m.Rank("a", []string{"xa", "ya"}, 5))
	assert.Equal(t, []string{"ya", "xa"}, m.Rank("a", []string{"ya", "xa"}, 5))
}

func TestRatioMatcher_NoCutoff(t *testing.T) {
	m := RatioMatcher{}

	got := m.Rank("qqq", []string{"apple", "banana"}, 5)
	assert.Len(t, got, 2)
}

func TestSubsequenceMatcher_Rank(t *testing.T) {
	m := SubsequenceMatcher{}
	keys := []string{"apple", "apricot", "banana"}

	assert.ElementsMatch(t, []string{"apple", "apricot"}, m.Rank("ap", keys, 20))
	assert.Len(t, m.Rank("ap", keys, 1), 1)
	assert.Nil(t, m.Rank("", keys, 20))
	assert.Empty(t, m.Rank("zz", keys, 20))
}

func TestNewMatcher(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  bool
	}{
		{name: "default", input: "", wantName: MatcherRatio},
		{name: "ratio", input: "ratio", wantName: MatcherRatio},
		{name: "case insensitive", input: "Subsequence", wantName: MatcherSubsequence},
		{name: "unknown", input: "levenshtein", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, m.Name())
		})
	}
}
