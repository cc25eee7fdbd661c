package groups

import "github.com/rs/zerolog"

// Result summarizes one filtering run.
type Result struct {
	Total    int
	Excluded int
	Kept     int
	Wrote    bool
}

// Run reads the input CSV, drops rows whose name carries an environment
// marker, and writes the survivors to the output path. Nothing is written
// when no rows survive.
func Run(input, output string, filter *Filter, logger zerolog.Logger) (Result, error) {
	rows, err := ReadRows(input)
	if err != nil {
		return Result{}, err
	}

	kept, excluded := filter.Split(rows)
	for _, r := range excluded {
		logger.Info().Str("name", r.Name).Msg("excluded")
	}

	result := Result{
		Total:    len(rows),
		Excluded: len(excluded),
		Kept:     len(kept),
	}

	if len(kept) == 0 {
		logger.Warn().Msg("no production entries found to save")
		return result, nil
	}

	if err := WriteRows(output, kept); err != nil {
		return result, err
	}
	result.Wrote = true

	logger.Info().
		Int("total", result.Total).
		Int("excluded", result.Excluded).
		Int("kept", result.Kept).
		Str("output", output).
		Msg("filtering completed")

	return result, nil
}
