package gallows

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderClamps(t *testing.T) {
	last := Render(Stages() - 1)
	assert.Equal(t, last, Render(Stages()))
	assert.Equal(t, last, Render(100))
	assert.Equal(t, Render(0), Render(-3))
}

func TestRenderDeterministic(t *testing.T) {
	for i := 0; i < Stages(); i++ {
		assert.Equal(t, Render(i), Render(i))
	}
}

func TestStagesProgress(t *testing.T) {
	assert.Equal(t, 7, Stages())
	// Each wrong guess must change the drawing.
	for i := 1; i < Stages(); i++ {
		assert.NotEqual(t, Render(i-1), Render(i))
	}
	// The final stage has the full figure.
	assert.True(t, strings.Contains(Render(Stages()-1), "O"))
	assert.True(t, strings.Contains(Render(Stages()-1), `/ \`))
}
