package snake

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Board dimensions.
const (
	Rows = 20
	Cols = 20
)

// Cell addresses a board position. Rows grow downward.
type Cell struct {
	Row, Col int
}

// NoFood marks a board with no free cell left for food.
var NoFood = Cell{Row: -1, Col: -1}

// InBounds reports whether c lies on the board.
func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d core.Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// TickResult is the outcome of advancing the snake one cell.
type TickResult struct {
	Snake    []Cell
	Food     Cell
	Ate      bool
	Terminal bool
}

// InitialSnake returns the starting snake, head first.
func InitialSnake() []Cell {
	return []Cell{{Row: 10, Col: 11}, {Row: 10, Col: 10}, {Row: 10, Col: 9}}
}

// SetDirection returns the heading after a direction request.
// A request for the exact reverse of current is discarded.
func SetDirection(current, requested core.Direction) core.Direction {
	if requested == current.Opposite() {
		return current
	}
	return requested
}

// Tick advances the snake one cell in direction d.
//
// Leaving the board or entering any current segment, including the tail
// that would vacate this tick, is terminal and returns snake and food
// unchanged. Entering the food cell grows the snake by one and resamples
// food uniformly from the free cells. The input slice is never modified.
func Tick(snake []Cell, food Cell, d core.Direction, rng *rand.Rand) TickResult {
	head := snake[0].Step(d)

	if !head.InBounds() || contains(snake, head) {
		return TickResult{Snake: snake, Food: food, Terminal: true}
	}

	if head == food {
		next := make([]Cell, 0, len(snake)+1)
		next = append(next, head)
		next = append(next, snake...)
		return TickResult{Snake: next, Food: SpawnFood(next, rng), Ate: true}
	}

	next := make([]Cell, 0, len(snake))
	next = append(next, head)
	next = append(next, snake[:len(snake)-1]...)
	return TickResult{Snake: next, Food: food}
}

// SpawnFood picks a uniformly random cell not covered by snake.
// It returns NoFood when the snake fills the board.
func SpawnFood(snake []Cell, rng *rand.Rand) Cell {
	var occupied [Rows][Cols]bool
	for _, c := range snake {
		occupied[c.Row][c.Col] = true
	}

	var free []Cell
	for r := range Rows {
		for c := range Cols {
			if !occupied[r][c] {
				free = append(free, Cell{Row: r, Col: c})
			}
		}
	}

	if len(free) == 0 {
		return NoFood
	}
	return free[rng.Intn(len(free))]
}

func contains(snake []Cell, c Cell) bool {
	for _, seg := range snake {
		if seg == c {
			return true
		}
	}
	return false
}
