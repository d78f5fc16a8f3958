// Package gallery models the image slider on the product detail page: a
// cursor over a fixed, non-empty image sequence with cyclic navigation.
// The page derives its prev/next/thumbnail links from one State per
// request, so the cursor never leaks across products.
package gallery

// State is a cursor into a gallery of Size images. Size must be >= 1; a
// product with no images is rejected upstream before a State is built.
type State struct {
	Size   int
	Cursor int
}

// New opens a gallery at the first image.
func New(size int) State {
	return State{Size: size}
}

// Next advances the cursor, wrapping from the last image to the first.
func (s State) Next() State {
	s.Cursor = (s.Cursor + 1) % s.Size
	return s
}

// Prev moves the cursor back, wrapping from the first image to the last.
func (s State) Prev() State {
	s.Cursor = (s.Cursor - 1 + s.Size) % s.Size
	return s
}

// Select jumps straight to image i. Callers present only valid indices
// (thumbnails render one link per image); Valid exists for boundary code
// that receives the index from a query string.
func (s State) Select(i int) State {
	s.Cursor = i
	return s
}

// Valid reports whether i is a usable cursor for this gallery.
func (s State) Valid(i int) bool {
	return i >= 0 && i < s.Size
}
