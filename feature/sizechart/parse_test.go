package sizechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBrand(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Nike", "nike"},
		{"  NIKE ", "nike"},
		{"New Balance", "new_balance"},
		{"new-balance", "new_balance"},
		{"Dr. Martens", "dr_martens"},
		{"On", "on"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBrand(tt.in))
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"9.5", "9.5", true},
		{" 10 ", "10", true},
		{"9.5 US", "9.5", true},
		{"9.5.1", "9.5", true},
		{"9.", "9", true},
		{".5", "0.5", true},
		{"43 1/3", "43", true},
		{"", "0", false},
		{"US 9", "0", false},
		{"abc", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSize(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label  string
		want   string
		wantOK bool
	}{
		{"9.5", "9.5", true},
		{"9.5 US", "9.5", true},
		{"US 9", "9", true},
		{"EU 42", "42", true},
		{"0", "0", false},
		{"0.0", "0", false},
		{"One Size", "0", false},
		{"", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseLabel(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestParseGender(t *testing.T) {
	for _, in := range []string{"MALE", "male", "uomo", "men"} {
		g, err := ParseGender(in)
		assert.NoError(t, err)
		assert.Equal(t, GenderMale, g)
	}
	for _, in := range []string{"FEMALE", "donna", "Women"} {
		g, err := ParseGender(in)
		assert.NoError(t, err)
		assert.Equal(t, GenderFemale, g)
	}
	_, err := ParseGender("kids")
	assert.Error(t, err)
}
