package fmctrainer

import (
	"strings"

	"github.com/cubetools/fmctrainer/internal/cube"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single outer-layer face turn.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

var faceIndex = map[Face]int{
	FaceU: cube.FaceU, FaceD: cube.FaceD,
	FaceF: cube.FaceF, FaceB: cube.FaceB,
	FaceR: cube.FaceR, FaceL: cube.FaceL,
}

var faceByIndex = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

// internal converts to the packed move representation.
func (m Move) internal() cube.Move {
	twist := cube.TwistCW
	switch m.Turn {
	case CCW:
		twist = cube.TwistCCW
	case Double:
		twist = cube.TwistHalf
	}
	return cube.NewMove(faceIndex[m.Face], twist)
}

func externalMove(m cube.Move) Move {
	turn := CW
	switch m.Twist() {
	case cube.TwistCCW:
		turn = CCW
	case cube.TwistHalf:
		turn = Double
	}
	return Move{Face: faceByIndex[m.Face()], Turn: turn}
}

func internalMoves(moves []Move) []cube.Move {
	out := make([]cube.Move, len(moves))
	for i, m := range moves {
		out[i] = m.internal()
	}
	return out
}

func externalMoves(moves []cube.Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[i] = externalMove(m)
	}
	return out
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	default:
		return Move{}, ErrInvalidNotation
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		case "2'", "2`":
			turn = Double // Same as 180
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Any invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
