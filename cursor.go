package everyuuid

import "fmt"

// NewCursor returns a cursor positioned at a given start index.
func NewCursor(start Index) (*Cursor, error) {
	if !start.Valid() {
		return nil, fmt.Errorf("%w; cannot start cursor at %s", ErrOutOfRange, start.String())
	}
	return &Cursor{position: start}, nil
}

// Cursor tracks a position in the index space and renders windows of
// consecutive rows starting at that position.
//
// A cursor is not safe for concurrent use.
type Cursor struct {
	position     Index
	highlight    Index
	hasHighlight bool
}

// Row is a single index and its identifier.
type Row struct {
	Index       Index
	Identifier  Identifier
	Highlighted bool
}

// String returns the zero padded index followed by the identifier.
func (r Row) String() string {
	return formatIndexForDisplay(r.Index) + "  " + r.Identifier.String()
}

// Position returns the first index of the window.
func (c *Cursor) Position() Index {
	return c.position
}

// Highlight returns the index of the most recent jump target, if it is still set.
func (c *Cursor) Highlight() (Index, bool) {
	return c.highlight, c.hasHighlight
}

// Next advances the cursor by one, wrapping from [MaxIndex] to zero.
//
// Moving forward clears the highlight.
func (c *Cursor) Next() {
	c.position = c.position.Next()
	c.hasHighlight = false
}

// Prev moves the cursor back by one, stopping at zero.
func (c *Cursor) Prev() {
	c.position = c.position.Prev()
}

// ValidateInput returns an error if the input would be rejected by [Cursor.Jump].
func (c *Cursor) ValidateInput(input string) error {
	_, err := ParseIndex(input)
	return err
}

// Jump moves the cursor to the index given by base 10 input and highlights it.
//
// If the input is not a valid index the cursor is left unchanged.
func (c *Cursor) Jump(input string) error {
	index, err := ParseIndex(input)
	if err != nil {
		return err
	}
	c.position = index
	c.highlight = index
	c.hasHighlight = true
	return nil
}

// Window returns rows for the consecutive indices starting at the cursor,
// wrapping past [MaxIndex] to zero.
func (c *Cursor) Window(rows int) []Row {
	if rows <= 0 {
		return nil
	}
	output := make([]Row, 0, rows)
	index := c.position
	for x := 0; x < rows; x++ {
		// position is always valid, so the mapping cannot fail here.
		id, _ := FromIndex(index)
		output = append(output, Row{
			Index:       index,
			Identifier:  id,
			Highlighted: c.hasHighlight && index == c.highlight,
		})
		index = index.Next()
	}
	return output
}
