package domain

// Match матч, связанный с резервацией
// Каноническая запись принадлежит Data Layer; создается сагой create_match
type Match struct {
	ID             int64
	ReservationID  int64
	Team1ID        int64
	Team2ID        int64
	IsFriendly     bool
	ChampionshipID *int64
}
