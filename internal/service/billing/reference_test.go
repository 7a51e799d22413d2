package billing

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceFormat = regexp.MustCompile(`^97-[A-Z]{3}\d{6}\d{3}$`)

func TestGenerateReference_Format(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	issuedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	ref := GenerateReference("Aura Beauty Studio", issuedAt, rng)

	assert.Regexp(t, referenceFormat, ref)
	assert.True(t, strings.HasPrefix(ref, "97-AUR260315"))
}

func TestGenerateReference_SkipsNonLatinLetters(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	issuedAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	// Диакритика (Š) и пробелы не входят в префикс
	ref := GenerateReference("Šik Frizerski Salon", issuedAt, rng)
	assert.True(t, strings.HasPrefix(ref, "97-IKF260102"))
}

func TestGenerateReference_FallbackPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	issuedAt := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		salon string
	}{
		{name: "digits only", salon: "123"},
		{name: "too few letters", salon: "A1"},
		{name: "empty", salon: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := GenerateReference(tt.salon, issuedAt, rng)
			assert.True(t, strings.HasPrefix(ref, "97-MTM"), "got %s", ref)
			assert.Regexp(t, referenceFormat, ref)
		})
	}
}

func TestGenerateReference_RandomSuffixInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	issuedAt := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		ref := GenerateReference("Aura", issuedAt, rng)
		require.Regexp(t, referenceFormat, ref)
		suffix := ref[len(ref)-3:]
		assert.True(t, suffix >= "100" && suffix <= "999", "suffix %s out of range", suffix)
	}
}
