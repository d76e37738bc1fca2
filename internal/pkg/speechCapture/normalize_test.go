package speechCapture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentifiersSpokenDigits(t *testing.T) {
	result := NormalizeIdentifiers("my id is see oh one")
	assert.Contains(t, result, "C01")
}

func TestNormalizeIdentifiersMixedWordsAndDigits(t *testing.T) {
	result := NormalizeIdentifiers("look up C zero one")
	assert.Contains(t, result, "C01")
}

func TestNormalizeIdentifiersLongerRun(t *testing.T) {
	result := NormalizeIdentifiers("contact see oh seven please")
	assert.Contains(t, result, "C07")
}

func TestNormalizeIdentifiersAlreadyCanonical(t *testing.T) {
	result := NormalizeIdentifiers("What is C0001")
	assert.Contains(t, result, "C0001")
}

func TestNormalizeIdentifiersNoPatternPassesThrough(t *testing.T) {
	utterance := "tell me about the weather"
	assert.Equal(t, utterance, NormalizeIdentifiers(utterance))
}

func TestNormalizeIdentifiersEmptyUtterance(t *testing.T) {
	assert.Equal(t, "", NormalizeIdentifiers(""))
}
