package model

// Position is a player's preferred court position
type Position string

// The five recognised court positions
const (
	PositionPG Position = "PG"
	PositionSG Position = "SG"
	PositionSF Position = "SF"
	PositionPF Position = "PF"
	PositionC  Position = "C"
)

// Positions lists the valid positions in display order
var Positions = []Position{PositionPG, PositionSG, PositionSF, PositionPF, PositionC}

// Valid reports whether p is one of the recognised positions
func (p Position) Valid() bool {
	switch p {
	case PositionPG, PositionSG, PositionSF, PositionPF, PositionC:
		return true
	}
	return false
}

// Role grants capabilities beyond ordinary membership
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Defaults applied to a freshly registered player
const (
	DefaultHeight   = 180
	DefaultWeight   = 75
	DefaultPosition = PositionSF
)

// Profile bounds enforced on updates
const (
	MinHeight = 140
	MaxHeight = 230
	MinWeight = 40
	MaxWeight = 150
)

// Player is one row of the league roster. The name is the primary key
// everywhere: credential lookup, stat ownership and the avatar filename stem.
type Player struct {
	Name         string
	PasswordHash string // bcrypt hash, comparison-only
	Height       int    // cm
	Weight       int    // kg
	Position     Position
	Role         Role
}

// NewPlayer returns a player with registration defaults applied
func NewPlayer(name, passwordHash string) *Player {
	return &Player{
		Name:         name,
		PasswordHash: passwordHash,
		Height:       DefaultHeight,
		Weight:       DefaultWeight,
		Position:     DefaultPosition,
		Role:         RoleMember,
	}
}

// IsAdmin reports whether the player holds the admin capability
func (p *Player) IsAdmin() bool {
	return p.Role == RoleAdmin
}
