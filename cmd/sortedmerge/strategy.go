package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"facette.io/natsort"
	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/ordering"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Strategy names accepted by --strategy.
const (
	strategyLexical = "lexical"
	strategyNatural = "natural"
	strategyNumeric = "numeric"
	strategyCollate = "collate"
)

// resolveStrategy builds the line ordering described by cfg.
func resolveStrategy(cfg Config) (ordering.Strategy[string], error) { //nolint:ireturn
	var strategy ordering.Strategy[string]

	switch strings.ToLower(strings.TrimSpace(cfg.Strategy)) {
	case strategyLexical, "":
		if cfg.IgnoreCase {
			strategy = ordering.ByKey(strings.ToLower)
		} else {
			strategy = ordering.Natural[string]()
		}
	case strategyNatural:
		if cfg.IgnoreCase {
			strategy = ordering.Predicate(func(a, b string) bool {
				return natsort.Compare(strings.ToLower(a), strings.ToLower(b))
			})
		} else {
			strategy = ordering.NaturalStrings()
		}
	case strategyNumeric:
		strategy = ordering.ByKey(numericKey)
	case strategyCollate:
		tag, err := language.Parse(cfg.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: collate locale %q: %w", sortederrors.ErrUnknownStrategy, cfg.Locale, err)
		}

		var opts []collate.Option
		if cfg.IgnoreCase {
			opts = append(opts, collate.IgnoreCase)
		}

		strategy = ordering.Collation(tag, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", sortederrors.ErrUnknownStrategy, cfg.Strategy)
	}

	if cfg.Reverse {
		strategy = ordering.Reverse(strategy)
	}

	return strategy, nil
}

// numericKey parses the leading field of line as a float. Lines without a
// number get NaN, which sorts before every number.
func numericKey(line string) float64 {
	field := strings.TrimSpace(line)
	if i := strings.IndexAny(field, " \t"); i >= 0 {
		field = field[:i]
	}

	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return math.NaN()
	}

	return value
}
