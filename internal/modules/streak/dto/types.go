package dto

type StatusOutput struct {
	Streak            int
	LastCompletedDate string
	StudiedToday      bool
	// AtRisk is set when the run ended yesterday and nothing was completed yet today.
	AtRisk bool
}
