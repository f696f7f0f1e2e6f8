package spintax

import (
	"sort"
	"sync"

	"github.com/itsatony/go-spintax/internal"
	"go.uber.org/zap"
)

// Engine is the main entry point for the spintax system. It parses
// templates, generates variations, and manages a registry of named
// templates. Every parse is a fresh, stateless computation; the
// registry is the only state an Engine carries.
type Engine struct {
	config    *engineConfig
	logger    *zap.Logger
	templates map[string]*Template // Named templates
	tmplMu    sync.RWMutex         // Protects templates map
}

// New creates a new spintax Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		config:    config,
		logger:    logger,
		templates: make(map[string]*Template),
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Parse scans a spintax source string into a Template. Parsing is total:
// malformed brace syntax degrades to literal text instead of failing,
// so there is no error to return. The Template can be expanded, sampled,
// and analyzed repeatedly.
func (e *Engine) Parse(source string) *Template {
	segments := internal.NewScanner(source, e.logger).Scan()
	return newTemplate(source, segments, e)
}

// Spin returns one random expansion of text. When sampling produces
// nothing, the input is returned unchanged.
func (e *Engine) Spin(text string) string {
	return e.Parse(text).Spin()
}

// Generate parses text once and produces variations per the options.
// See GenerateOptions for modes, defaults, and caps.
func (e *Engine) Generate(text string, opts *GenerateOptions) (*GenerateResult, error) {
	return e.Parse(text).Generate(opts)
}

// Analyze parses text once and reports its combinatorial statistics.
func (e *Engine) Analyze(text string) *Stats {
	return e.Parse(text).Stats()
}

// Validate reports whether braces in text are strictly balanced. This
// is intentionally stricter than Parse, which tolerates unmatched braces.
func (e *Engine) Validate(text string) bool {
	return internal.CheckBalance(text)
}

// ExtractOptions returns the option lists of the spin elements in text,
// in source order. Literal-only segments are omitted.
func (e *Engine) ExtractOptions(text string) [][]string {
	return e.Parse(text).SpinElements()
}

// RegisterTemplate parses source and stores it under name for later use
// via SpinTemplate or GetTemplate. Returns an error if the name is empty
// or already taken.
func (e *Engine) RegisterTemplate(name string, source string) error {
	if name == "" {
		return NewEmptyTemplateNameError()
	}

	e.tmplMu.Lock()
	defer e.tmplMu.Unlock()

	if _, exists := e.templates[name]; exists {
		return NewTemplateExistsError(name)
	}

	e.templates[name] = e.Parse(source)
	return nil
}

// MustRegisterTemplate registers a template and panics on error.
func (e *Engine) MustRegisterTemplate(name string, source string) {
	if err := e.RegisterTemplate(name, source); err != nil {
		panic(err)
	}
}

// UnregisterTemplate drops the named template from the registry and
// reports whether it was present.
func (e *Engine) UnregisterTemplate(name string) bool {
	e.tmplMu.Lock()
	defer e.tmplMu.Unlock()

	if _, exists := e.templates[name]; exists {
		delete(e.templates, name)
		return true
	}
	return false
}

// GetTemplate looks up a registered template. The second return value
// is false when no template carries that name.
func (e *Engine) GetTemplate(name string) (*Template, bool) {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	tmpl, ok := e.templates[name]
	return tmpl, ok
}

// HasTemplate reports whether a template is registered under name.
func (e *Engine) HasTemplate(name string) bool {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	_, ok := e.templates[name]
	return ok
}

// ListTemplates returns the registered template names, sorted.
func (e *Engine) ListTemplates() []string {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TemplateCount reports how many templates are currently registered.
func (e *Engine) TemplateCount() int {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	return len(e.templates)
}

// SpinTemplate returns one random expansion of the registered template.
func (e *Engine) SpinTemplate(name string) (string, error) {
	tmpl, ok := e.GetTemplate(name)
	if !ok {
		return "", NewTemplateNotFoundError(name)
	}
	return tmpl.Spin(), nil
}

// defaultEngine backs the package-level convenience functions.
var defaultEngine = MustNew()

// Spin returns one random expansion of text using the default engine.
func Spin(text string) string {
	return defaultEngine.Spin(text)
}

// Generate produces variations of text using the default engine.
func Generate(text string, opts *GenerateOptions) (*GenerateResult, error) {
	return defaultEngine.Generate(text, opts)
}

// Analyze reports combinatorial statistics for text using the default engine.
func Analyze(text string) *Stats {
	return defaultEngine.Analyze(text)
}

// Validate reports whether braces in text are strictly balanced.
func Validate(text string) bool {
	return defaultEngine.Validate(text)
}

// ExtractOptions returns the spin-element option lists of text using
// the default engine.
func ExtractOptions(text string) [][]string {
	return defaultEngine.ExtractOptions(text)
}

// Parse scans text into a Template using the default engine.
func Parse(text string) *Template {
	return defaultEngine.Parse(text)
}
