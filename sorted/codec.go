package sorted

import (
	"encoding/json"
	"fmt"
	"slices"

	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/ordering"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the sequence as a JSON array in order. An empty
// sequence encodes as [].
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	if s.data == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s.data)
}

// UnmarshalJSON replaces the contents with a JSON array, sorting it under the
// sequence's strategy. The sequence must have been created with a strategy
// (for example with New) or errors.ErrNoStrategy is returned.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	if s.strategy == nil {
		return fmt.Errorf("sorted: cannot decode JSON: %w", sortederrors.ErrNoStrategy)
	}

	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	s.reset(values)

	return nil
}

// MarshalYAML encodes the sequence as a YAML sequence in order.
func (s *Sequence[T]) MarshalYAML() (any, error) {
	if s.data == nil {
		return []T{}, nil
	}

	return s.data, nil
}

// UnmarshalYAML replaces the contents with a YAML sequence, sorting it under
// the sequence's strategy. Like UnmarshalJSON it requires a strategy.
func (s *Sequence[T]) UnmarshalYAML(node *yaml.Node) error {
	if s.strategy == nil {
		return fmt.Errorf("sorted: cannot decode YAML: %w", sortederrors.ErrNoStrategy)
	}

	var values []T
	if err := node.Decode(&values); err != nil {
		return err
	}

	s.reset(values)

	return nil
}

func (s *Sequence[T]) reset(values []T) {
	slices.SortStableFunc(values, ordering.Func(s.strategy))

	s.data = values
}

var (
	_ json.Marshaler   = (*Sequence[int])(nil)
	_ json.Unmarshaler = (*Sequence[int])(nil)
	_ yaml.Marshaler   = (*Sequence[int])(nil)
	_ yaml.Unmarshaler = (*Sequence[int])(nil)
)
