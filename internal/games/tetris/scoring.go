package tetris

// SoftDropPoints is awarded per row a piece moves down, whether the move
// came from the player or from gravity.
const SoftDropPoints = 1

// LinePoints maps the number of rows cleared by a single lock to points.
var LinePoints = [...]int{0, 100, 300, 500, 800}

// LineClearScore returns the points for clearing n rows at once.
// Counts outside the table score nothing.
func LineClearScore(n int) int {
	if n < 0 || n >= len(LinePoints) {
		return 0
	}
	return LinePoints[n]
}

// DropScore returns the points for moving down dy rows.
func DropScore(dy int) int {
	if dy <= 0 {
		return 0
	}
	return dy * SoftDropPoints
}
