package solver

// Shared test grids. diagGrid is a classic diagonal Sudoku with a
// unique solution; hardGrid stalls pure propagation and forces the
// search to branch; checkerGrid is dense enough for the naive
// backtracker; badGrid doubles the 2 in row A and is unsolvable.
const (
	diagGrid     = "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3"
	diagSolution = "267945381853716249491823576576438192384192657129657438642379815935281764718564923"
	hardGrid     = "..7...3818..7......9.......5..4....2.....2........7....4........3..81.6....5....."
	checkerGrid  = ".6.9.5.8.8.3.1.2.9.9.8.3.7.5.6.3.1.2.8.1.2.5.1.9.5.4.8.4.3.9.1.9.5.8.7.4.1.5.4.2."
	badGrid      = "2....2........62....1....7...6..8...3...9...7...6..4...4....8....52.............3"
	emptyGrid    = "................................................................................."
)
