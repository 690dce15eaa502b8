package usecase

const (
	// RecentLimit is how many records the dashboard lists.
	RecentLimit = 10

	// SeriesDays is the length of the dashboard daily series, today included.
	SeriesDays = 7
)
