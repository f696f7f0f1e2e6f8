package spintax

// Mode selects the generation strategy for Generate.
type Mode string

// GenerateOptions configures variation generation.
//
// Example:
//
//	result, err := spintax.Generate("{A|B} {1|2|3}", &spintax.GenerateOptions{
//	    Count: 5,
//	    Mode:  spintax.ModeSequential,
//	})
type GenerateOptions struct {
	// Count is the number of variations to produce. Ignored by ModeAll,
	// which always targets the full (capped) space. Zero means
	// DefaultCount; the mode caps apply on top.
	Count int

	// Mode is the generation strategy. Empty means ModeRandom.
	Mode Mode
}

// GenerateResult is the outcome of one Generate call.
type GenerateResult struct {
	// Variations are the produced expansions.
	Variations []string

	// Stats describes the template, with GeneratedCount filled in.
	Stats *Stats
}

// Generate produces variations of the template per the options:
//
//   - ModeRandom: up to Count (capped at MaxRandomVariations) distinct
//     random expansions.
//   - ModeAll: every expansion, capped at MaxAllVariations, in
//     canonical order with no duplicates for distinct option sets.
//   - ModeSequential: the first Count (capped at
//     MaxSequentialVariations) expansions in canonical order.
//
// An unknown mode returns a validation error; malformed spintax never
// does.
func (t *Template) Generate(opts *GenerateOptions) (*GenerateResult, error) {
	count := DefaultCount
	mode := ModeRandom
	if opts != nil {
		if opts.Count != 0 {
			count = opts.Count
		}
		if opts.Mode != "" {
			mode = opts.Mode
		}
	}

	stats := t.Stats()

	var variations []string
	switch mode {
	case ModeAll:
		limit := stats.TotalCombinations
		if limit > MaxAllVariations {
			limit = MaxAllVariations
		}
		variations = t.First(limit)
	case ModeSequential:
		if count > MaxSequentialVariations {
			count = MaxSequentialVariations
		}
		variations = t.First(count)
	case ModeRandom:
		if count > MaxRandomVariations {
			count = MaxRandomVariations
		}
		variations = t.Sample(count)
	default:
		return nil, NewInvalidModeError(mode)
	}

	stats.GeneratedCount = len(variations)
	return &GenerateResult{
		Variations: variations,
		Stats:      stats,
	}, nil
}
