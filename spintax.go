// Package spintax parses and expands spintax templates - text containing
// {option1|option2|...} groups, nestable to arbitrary depth - into
// concrete variations.
//
//	{Hello|Hi|Hey} there, {world|friend}!
//
// # Basic Usage
//
// The package-level functions cover the common cases:
//
//	one := spintax.Spin("{Hello|Hi} {world|there}!")
//	// e.g. "Hi world!"
//
//	result, err := spintax.Generate("{A|B} {1|2}", &spintax.GenerateOptions{
//	    Mode: spintax.ModeAll,
//	})
//	// result.Variations: ["A 1", "A 2", "B 1", "B 2"]
//
//	stats := spintax.Analyze("{A|B} {1|2|3}")
//	// stats.TotalCombinations: 6, stats.SpinElements: 2
//
// # Generation Modes
//
// ModeRandom draws distinct random variations without building the full
// combination space. ModeAll materializes every combination. ModeSequential
// returns the first N combinations in canonical order, where later groups
// vary fastest. Generate enforces hard output caps per mode to bound
// worst-case cost on large templates.
//
// # Fault Tolerance
//
// Parsing never fails. An unmatched open brace degrades to literal text
// and scanning continues; an empty group yields zero options and simply
// collapses the combination space. Validate offers a strict brace-balance
// check for callers that want to reject malformed input up front:
//
//	spintax.Validate("{Hello|Hi}") // true
//	spintax.Validate("{Hello|Hi")  // false
//
// # Configuration
//
// Create an Engine for custom behavior:
//
//	engine := spintax.MustNew(
//	    spintax.WithLogger(logger),
//	    spintax.WithRandSource(rand.NewSource(42)),
//	)
//	tmpl := engine.Parse("{fast|slow} build")
//	all := tmpl.ExpandAll()
//
// An Engine also keeps a registry of named templates and can load them
// in bulk from YAML spin-set documents; see RegisterTemplate and LoadSet.
package spintax
