package entity

// StandingRow is one line of a competition table, read on demand by the
// standings command. Not used by the reminder engine.
type StandingRow struct {
	Position       int
	Team           string
	Played         int
	Won            int
	Draw           int
	Lost           int
	GoalDifference int
	Points         int
}
