package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateContentRequiresInitializedClient(t *testing.T) {
	g := &Generator{}

	_, err := g.GenerateContent(context.Background(), "prompt")
	assert.ErrorContains(t, err, "not initialized")

	_, err = g.GenerateContentWithCache(context.Background(), "prompt", "caches/abc")
	assert.ErrorContains(t, err, "not initialized")
}

func TestEnsureProfileCacheValidation(t *testing.T) {
	g := &Generator{}

	_, err := g.EnsureProfileCache(context.Background(), "p1", "", "payload")
	assert.ErrorContains(t, err, "not initialized")

	var nilGen *Generator
	_, err = nilGen.EnsureProfileCache(context.Background(), "p1", "", "payload")
	assert.Error(t, err)
}
