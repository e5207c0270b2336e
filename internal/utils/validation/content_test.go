package validation_test

import (
	"testing"

	"github.com/dailyforge/journal_backend/internal/apperrors"
	"github.com/dailyforge/journal_backend/internal/utils/validation"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanField_TrimsWhitespace(t *testing.T) {
	cleaned, err := validation.CleanField("work", "  wrote the parser  ")
	require.NoError(t, err)
	assert.Equal(t, "wrote the parser", cleaned)
}

func TestCleanField_RejectsDenylistedContent(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"lowercase", "tried to hack the planet"},
		{"uppercase", "BADWORD in caps"},
		{"mixed case", "XxX marks the spot"},
		{"embedded substring", "hackathon prep"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validation.CleanField("struggle", tc.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestCleanField_RejectsEmptyAfterTrim(t *testing.T) {
	for _, value := range []string{"", "   ", "\t\n"} {
		_, err := validation.CleanField("intention", value)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestCleanField_AllowsOrdinaryText(t *testing.T) {
	cleaned, err := validation.CleanField("work", "shipped the release")
	require.NoError(t, err)
	assert.Equal(t, "shipped the release", cleaned)
}

func TestContainsDenylisted(t *testing.T) {
	assert.True(t, validation.ContainsDenylisted("a Hack job"))
	assert.False(t, validation.ContainsDenylisted("an honest day's work"))
}

func TestRegisterContentRules_BindsNodenylistTag(t *testing.T) {
	v := validator.New()
	require.NoError(t, validation.RegisterContentRules(v))

	type payload struct {
		Work string `validate:"nodenylist"`
	}

	assert.NoError(t, v.Struct(payload{Work: "refactored the cache"}))
	assert.Error(t, v.Struct(payload{Work: "HACKed together a fix"}))
}
