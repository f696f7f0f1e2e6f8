package spintax_test

import (
	"testing"

	spintax "github.com/itsatony/go-spintax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinSet_SerializeRoundtrip(t *testing.T) {
	set := &spintax.SpinSet{
		Name:        "greetings",
		Description: "Salutation variants",
		Templates: map[string]string{
			"hello": "{Hello|Hi|Hey} {there|friend}!",
			"bye":   "{Bye|See you|Later}!",
		},
	}

	data, err := set.Serialize()
	require.NoError(t, err)

	parsed, err := spintax.ParseSet(data)
	require.NoError(t, err)
	assert.Equal(t, set.Name, parsed.Name)
	assert.Equal(t, set.Description, parsed.Description)
	assert.Equal(t, set.Templates, parsed.Templates)
}

func TestParseSet_Document(t *testing.T) {
	doc := []byte(`name: demo
templates:
  greet: "{Hello|Hi} world"
`)

	set, err := spintax.ParseSet(doc)

	require.NoError(t, err)
	assert.Equal(t, "demo", set.Name)
	assert.Equal(t, "{Hello|Hi} world", set.Templates["greet"])
}

func TestParseSet_EmptyDocumentFails(t *testing.T) {
	_, err := spintax.ParseSet(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), spintax.ErrMsgSetEmpty)
}

func TestParseSet_MalformedYAMLFails(t *testing.T) {
	_, err := spintax.ParseSet([]byte("templates: [not: a: map"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), spintax.ErrMsgSetUnmarshal)
}

func TestSpinSet_SerializeNilFails(t *testing.T) {
	var set *spintax.SpinSet

	_, err := set.Serialize()

	require.Error(t, err)
}

func TestEngine_LoadSet(t *testing.T) {
	engine := spintax.MustNew()
	set := &spintax.SpinSet{
		Name: "demo",
		Templates: map[string]string{
			"greet": "{Hello|Hi}",
			"part":  "{Bye|Later}",
		},
	}

	require.NoError(t, engine.LoadSet(set))
	assert.Equal(t, 2, engine.TemplateCount())
	assert.True(t, engine.HasTemplate("greet"))
}

func TestEngine_LoadSetCollisionFails(t *testing.T) {
	engine := spintax.MustNew()
	engine.MustRegisterTemplate("greet", "{a|b}")

	err := engine.LoadSet(&spintax.SpinSet{
		Name:      "demo",
		Templates: map[string]string{"greet": "{c|d}"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), spintax.ErrMsgTemplateExists)
}

func TestEngine_LoadSetEmptyFails(t *testing.T) {
	engine := spintax.MustNew()

	require.Error(t, engine.LoadSet(nil))
	require.Error(t, engine.LoadSet(&spintax.SpinSet{Name: "empty"}))
}

func TestEngine_ExportSetRoundtrip(t *testing.T) {
	engine := spintax.MustNew()
	engine.MustRegisterTemplate("greet", "{Hello|Hi}")

	set := engine.ExportSet("backup", "registry snapshot")

	assert.Equal(t, "backup", set.Name)
	assert.Equal(t, map[string]string{"greet": "{Hello|Hi}"}, set.Templates)

	other := spintax.MustNew()
	require.NoError(t, other.LoadSet(set))
	assert.True(t, other.HasTemplate("greet"))
}
