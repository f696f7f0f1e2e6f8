package spintax

import (
	"gopkg.in/yaml.v3"
)

// SpinSet is a named collection of spintax templates, serializable to a
// YAML document. It is pure data: loading and saving bytes is the
// caller's concern.
//
//	name: greetings
//	description: Salutation variants
//	templates:
//	  hello: "{Hello|Hi|Hey} {there|friend}!"
//	  bye: "{Bye|See you|Later}!"
type SpinSet struct {
	// Name identifies the set.
	Name string `yaml:"name"`
	// Description is an optional human-readable summary.
	Description string `yaml:"description,omitempty"`
	// Templates maps template names to spintax sources.
	Templates map[string]string `yaml:"templates"`
}

// Serialize outputs the spin set as a YAML document.
func (s *SpinSet) Serialize() ([]byte, error) {
	if s == nil {
		return nil, NewSetEmptyError()
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, NewSetMarshalError(err)
	}
	return data, nil
}

// ParseSet parses a YAML spin-set document.
func ParseSet(data []byte) (*SpinSet, error) {
	if len(data) == 0 {
		return nil, NewSetEmptyError()
	}
	var set SpinSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, NewSetUnmarshalError(err)
	}
	return &set, nil
}

// LoadSet registers every template in the set on the engine. Names
// already registered cause an error; templates registered before the
// failing one remain registered.
func (e *Engine) LoadSet(set *SpinSet) error {
	if set == nil || len(set.Templates) == 0 {
		return NewSetEmptyError()
	}
	for name, source := range set.Templates {
		if err := e.RegisterTemplate(name, source); err != nil {
			return err
		}
	}
	return nil
}

// ExportSet builds a SpinSet from the engine's registered templates.
func (e *Engine) ExportSet(name, description string) *SpinSet {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	templates := make(map[string]string, len(e.templates))
	for tmplName, tmpl := range e.templates {
		templates[tmplName] = tmpl.Source()
	}
	return &SpinSet{
		Name:        name,
		Description: description,
		Templates:   templates,
	}
}
