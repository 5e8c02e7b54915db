package domain

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // naked / sole candidates
	StrategyOnlyChoice                  // only place for a digit in a unit
	StrategyTwins                       // naked twin pairs
)
