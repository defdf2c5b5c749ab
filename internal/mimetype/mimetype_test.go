package mimetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, JPEG, Normalize(JPG))
	assert.Equal(t, JPEG, Normalize(JPEG))
	assert.Equal(t, PNG, Normalize(PNG))
	assert.Equal(t, "application/octet-stream", Normalize("application/octet-stream"))
}

func TestMatchesAliasSymmetry(t *testing.T) {
	t.Parallel()

	assert.True(t, Matches(JPG, JPEG))
	assert.True(t, Matches(JPEG, JPG))
	assert.True(t, Matches(PNG, PNG))
	assert.False(t, Matches(PNG, JPEG))
	assert.False(t, Matches(GIF, WebP))
}

func TestKinds(t *testing.T) {
	t.Parallel()

	assert.True(t, IsText("text/plain"))
	assert.True(t, IsText("text/plain;charset=utf-8"))
	assert.False(t, IsText("text/html"))

	for _, m := range []string{PNG, JPEG, JPG, GIF, WebP} {
		assert.True(t, IsImage(m), m)
	}
	assert.False(t, IsImage("image/tiff"))
	assert.False(t, IsImage("text/plain"))
}
