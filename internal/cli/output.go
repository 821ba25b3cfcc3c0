package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case []Player:
		o.printPlayers(v)
	case StatEntry:
		o.printStatEntry(v)
	case []StatEntry:
		o.printStatEntries(v)
	case StatTotals:
		o.printStatTotals(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case []CredentialRow:
		o.printCredentialRows(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	Name     string `json:"name"`
	Height   int    `json:"height"`
	Weight   int    `json:"weight"`
	Position string `json:"position"`
	Role     string `json:"role"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// StatEntry response type
type StatEntry struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Goals    int    `json:"goals"`
	Rebounds int    `json:"rebounds"`
	Steals   int    `json:"steals"`
	Blocks   int    `json:"blocks"`
}

// StatTotals response type
type StatTotals struct {
	Name     string `json:"name"`
	Goals    int    `json:"goals"`
	Rebounds int    `json:"rebounds"`
	Steals   int    `json:"steals"`
	Blocks   int    `json:"blocks"`
}

// Leaderboard response type
type Leaderboard struct {
	Entries []StatTotals `json:"entries"`
}

// CredentialRow response type (admin listing)
type CredentialRow struct {
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
	Height       int    `json:"height"`
	Weight       int    `json:"weight"`
	Position     string `json:"position"`
	Role         string `json:"role"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s [%s]\n", p.Name, p.Role)
	fmt.Printf("Height: %d cm\n", p.Height)
	fmt.Printf("Weight: %d kg\n", p.Weight)
	fmt.Printf("Position: %s\n", p.Position)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Roster (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s  %d cm / %d kg / %s [%s]\n", p.Name, p.Height, p.Weight, p.Position, p.Role)
	}
}

func (o *Output) printStatEntry(e StatEntry) {
	fmt.Printf("%s %s: %d goals, %d rebounds, %d steals, %d blocks\n",
		e.Name, e.Date, e.Goals, e.Rebounds, e.Steals, e.Blocks)
}

func (o *Output) printStatEntries(entries []StatEntry) {
	if len(entries) == 0 {
		fmt.Println("No entries")
		return
	}
	fmt.Printf("%-12s %6s %9s %7s %7s\n", "Date", "Goals", "Rebounds", "Steals", "Blocks")
	for _, e := range entries {
		fmt.Printf("%-12s %6d %9d %7d %7d\n", e.Date, e.Goals, e.Rebounds, e.Steals, e.Blocks)
	}
}

func (o *Output) printStatTotals(t StatTotals) {
	fmt.Printf("Totals for %s:\n", t.Name)
	fmt.Printf("  Goals: %d\n", t.Goals)
	fmt.Printf("  Rebounds: %d\n", t.Rebounds)
	fmt.Printf("  Steals: %d\n", t.Steals)
	fmt.Printf("  Blocks: %d\n", t.Blocks)
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Entries) == 0 {
		fmt.Println("No stats recorded")
		return
	}
	fmt.Printf("%4s %-20s %6s %9s %7s %7s\n", "#", "Player", "Goals", "Rebounds", "Steals", "Blocks")
	for i, e := range l.Entries {
		fmt.Printf("%4d %-20s %6d %9d %7d %7d\n", i+1, e.Name, e.Goals, e.Rebounds, e.Steals, e.Blocks)
	}
}

func (o *Output) printCredentialRows(rows []CredentialRow) {
	fmt.Printf("Players (%d):\n", len(rows))
	for _, r := range rows {
		fmt.Printf("  - %s [%s] %d cm / %d kg / %s\n", r.Name, r.Role, r.Height, r.Weight, r.Position)
		fmt.Printf("    hash: %s\n", r.PasswordHash)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
