package domain

import "time"

// Board is a kanban board as returned by the upstream directory.
type Board struct {
	ID          string
	Name        string
	OwnerUserID string
	CreatedAt   time.Time
}

// CardList is a column of cards belonging to a board.
type CardList struct {
	ID       string
	BoardID  string
	Title    string
	Position int
}
