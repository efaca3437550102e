package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell with exactly 3 live neighbors is born, a live cell with 2 or 3
live neighbors survives, every other cell is dead in the next generation (B3/S23).
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
