package spintax_test

import (
	"math/rand"
	"testing"

	spintax "github.com/itsatony/go-spintax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_RegisterAndSpinTemplate(t *testing.T) {
	engine := spintax.MustNew()

	require.NoError(t, engine.RegisterTemplate("greeting", "{Hello|Hi} there"))

	result, err := engine.SpinTemplate("greeting")
	require.NoError(t, err)
	assert.Contains(t, []string{"Hello there", "Hi there"}, result)
}

func TestEngine_RegisterEmptyNameFails(t *testing.T) {
	engine := spintax.MustNew()

	err := engine.RegisterTemplate("", "{a|b}")

	require.Error(t, err)
	assert.Contains(t, err.Error(), spintax.ErrMsgEmptyTemplateName)
}

func TestEngine_RegisterDuplicateFails(t *testing.T) {
	engine := spintax.MustNew()
	require.NoError(t, engine.RegisterTemplate("dup", "{a|b}"))

	err := engine.RegisterTemplate("dup", "{c|d}")

	require.Error(t, err)
	assert.Contains(t, err.Error(), spintax.ErrMsgTemplateExists)
}

func TestEngine_MustRegisterTemplatePanicsOnDuplicate(t *testing.T) {
	engine := spintax.MustNew()
	engine.MustRegisterTemplate("once", "{a|b}")

	require.Panics(t, func() {
		engine.MustRegisterTemplate("once", "{c|d}")
	})
}

func TestEngine_SpinTemplateNotFound(t *testing.T) {
	engine := spintax.MustNew()

	_, err := engine.SpinTemplate("missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), spintax.ErrMsgTemplateNotFound)
}

func TestEngine_TemplateRegistryLifecycle(t *testing.T) {
	engine := spintax.MustNew()
	engine.MustRegisterTemplate("b", "{1|2}")
	engine.MustRegisterTemplate("a", "{3|4}")

	assert.Equal(t, 2, engine.TemplateCount())
	assert.Equal(t, []string{"a", "b"}, engine.ListTemplates())
	assert.True(t, engine.HasTemplate("a"))

	tmpl, ok := engine.GetTemplate("b")
	require.True(t, ok)
	assert.Equal(t, "{1|2}", tmpl.Source())

	assert.True(t, engine.UnregisterTemplate("a"))
	assert.False(t, engine.UnregisterTemplate("a"))
	assert.False(t, engine.HasTemplate("a"))
	assert.Equal(t, 1, engine.TemplateCount())
}

func TestEngine_SeededRandIsReproducible(t *testing.T) {
	source := "{a|b|c} {1|2|3} {x|y|z}"

	first := spintax.MustNew(spintax.WithRandSource(rand.NewSource(42))).Spin(source)
	second := spintax.MustNew(spintax.WithRandSource(rand.NewSource(42))).Spin(source)

	assert.Equal(t, first, second)
}

func TestEngine_ParseIsStatelessAcrossCalls(t *testing.T) {
	engine := spintax.MustNew()

	a := engine.Parse("{a|b}")
	b := engine.Parse("{a|b}")

	assert.NotSame(t, a, b)
	assert.Equal(t, a.ExpandAll(), b.ExpandAll())
}
