package response

import (
	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/services/auth"
)

// Player represents a roster entry in API responses. Password hashes never
// leave the credential endpoints.
type Player struct {
	Name     string `json:"name"`
	Height   int    `json:"height"`
	Weight   int    `json:"weight"`
	Position string `json:"position"`
	Role     string `json:"role"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		Name:     p.Name,
		Height:   p.Height,
		Weight:   p.Weight,
		Position: string(p.Position),
		Role:     string(p.Role),
	}
}

// CredentialRow is a roster entry including the stored password hash. Only
// the admin listing endpoint returns it.
type CredentialRow struct {
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
	Height       int    `json:"height"`
	Weight       int    `json:"weight"`
	Position     string `json:"position"`
	Role         string `json:"role"`
}

// CredentialRowFromModel converts a model.Player to a CredentialRow
func CredentialRowFromModel(p *model.Player) CredentialRow {
	return CredentialRow{
		Name:         p.Name,
		PasswordHash: p.PasswordHash,
		Height:       p.Height,
		Weight:       p.Weight,
		Position:     string(p.Position),
		Role:         string(p.Role),
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session and the
// player's roster row
func AuthResponseFromSession(s *auth.Session, p *model.Player) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(p),
		SessionToken: s.Token,
	}
}

// StatEntry represents one game's numbers in API responses
type StatEntry struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Goals    int    `json:"goals"`
	Rebounds int    `json:"rebounds"`
	Steals   int    `json:"steals"`
	Blocks   int    `json:"blocks"`
}

// StatEntryFromModel converts a model.StatEntry
func StatEntryFromModel(e *model.StatEntry) StatEntry {
	return StatEntry{
		Name:     e.PlayerName,
		Date:     string(e.Date),
		Goals:    e.Goals,
		Rebounds: e.Rebounds,
		Steals:   e.Steals,
		Blocks:   e.Blocks,
	}
}

// StatEntriesFromModel converts a slice of model.StatEntry
func StatEntriesFromModel(entries []*model.StatEntry) []StatEntry {
	out := make([]StatEntry, len(entries))
	for i, e := range entries {
		out[i] = StatEntryFromModel(e)
	}
	return out
}

// StatTotals represents a player's career sums
type StatTotals struct {
	Name     string `json:"name"`
	Goals    int    `json:"goals"`
	Rebounds int    `json:"rebounds"`
	Steals   int    `json:"steals"`
	Blocks   int    `json:"blocks"`
}

// StatTotalsFromModel converts model.StatTotals
func StatTotalsFromModel(t *model.StatTotals) StatTotals {
	return StatTotals{
		Name:     t.PlayerName,
		Goals:    t.Goals,
		Rebounds: t.Rebounds,
		Steals:   t.Steals,
		Blocks:   t.Blocks,
	}
}

// Leaderboard is the ranked list of career totals
type Leaderboard struct {
	Entries []StatTotals `json:"entries"`
}

// LeaderboardFromModel converts a ranked slice of model.StatTotals
func LeaderboardFromModel(board []*model.StatTotals) Leaderboard {
	entries := make([]StatTotals, len(board))
	for i, t := range board {
		entries[i] = StatTotalsFromModel(t)
	}
	return Leaderboard{Entries: entries}
}
