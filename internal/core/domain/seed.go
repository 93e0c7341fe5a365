package domain

import "strings"

// BuildSeedTemplate derives the spaced-seed bit template for a minimizer.
// The template is minimizerLen characters of '1' (care) and '0' (don't-care):
// a run of minimizerLen - 2*minimizerSpaces care positions followed by one
// "01" pair per space. The external hash table builder consumes the string
// verbatim as its seed mask.
//
// Spaced positions are capped at a quarter of the minimizer to preserve
// discriminative power, so minimizerSpaces must be in 0..minimizerLen/4.
func BuildSeedTemplate(minimizerLen, minimizerSpaces int) (string, error) {
	if minimizerSpaces < 0 || minimizerSpaces > minimizerLen/4 {
		return "", Detail(ErrSeedSpacesOutOfRange,
			"minimizer_len", minimizerLen,
			"minimizer_spaces", minimizerSpaces,
			"max_spaces", minimizerLen/4,
		)
	}

	var b strings.Builder
	b.Grow(minimizerLen)
	b.WriteString(strings.Repeat("1", minimizerLen-2*minimizerSpaces))
	b.WriteString(strings.Repeat("01", minimizerSpaces))
	return b.String(), nil
}
