package sortable

// String is a sortable wrapper for string, ordered bytewise.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

// Byte is a sortable wrapper for byte.
type Byte byte

var _ Sortable[Byte] = (*Byte)(nil)

func (b Byte) Equals(other Byte) bool {
	return b == other
}

func (b Byte) LessThan(other Byte) bool {
	return b < other
}
