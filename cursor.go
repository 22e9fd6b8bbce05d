package vix

// Viewport is the visible terminal grid queried at session start.
type Viewport struct {
	Cols int
	Rows int
}

// Position is a logical cursor position, 0-indexed.
// X is the column and Y the row; both stay within the viewport bounds.
type Position struct {
	X int
	Y int
}

// Direction is a single-axis cursor movement, matching the h/j/k/l keys.
type Direction int

const (
	MoveLeft Direction = iota
	MoveDown
	MoveUp
	MoveRight
)

// Move returns the position after moving one cell in the given direction,
// clamped to [0, cols) x [0, rows). Out-of-range requests are silently
// clamped rather than rejected, matching terminal cursor ergonomics.
func (p Position) Move(dir Direction, vp Viewport) Position {
	switch dir {
	case MoveLeft:
		if p.X > 0 {
			p.X--
		}
	case MoveRight:
		if p.X < vp.Cols-1 {
			p.X++
		}
	case MoveUp:
		if p.Y > 0 {
			p.Y--
		}
	case MoveDown:
		if p.Y < vp.Rows-1 {
			p.Y++
		}
	}
	return p
}
