package cube

// Face indices in fixed enumeration order. Opposite faces pair up as
// f and f^1, which the search and the canonicalizer rely on.
const (
	FaceU = iota
	FaceD
	FaceF
	FaceB
	FaceR
	FaceL
)

var faceLetters = [6]string{"U", "D", "F", "B", "R", "L"}

// Twist amounts within a face.
const (
	TwistCW = iota // quarter turn clockwise
	TwistCCW
	TwistHalf
)

// Move identifies one of the 18 face turns: face*3 + twist.
// The numeric order (U, U', U2, D, D', D2, F, ... L2) is the enumeration
// order used everywhere a deterministic move order matters.
type Move uint8

// NumMoves is the number of elementary face turns.
const NumMoves = 18

// NewMove builds a move from a face index and twist.
func NewMove(face, twist int) Move {
	return Move(face*3 + twist)
}

// Face returns the move's face index.
func (m Move) Face() int { return int(m) / 3 }

// Twist returns the move's twist amount.
func (m Move) Twist() int { return int(m) % 3 }

// QuarterTurns returns the twist as clockwise quarter turns (1, 3 or 2).
func (m Move) QuarterTurns() int {
	switch m.Twist() {
	case TwistCW:
		return 1
	case TwistCCW:
		return 3
	default:
		return 2
	}
}

// Inverse returns the move undoing m. Half turns are self-inverse.
func (m Move) Inverse() Move {
	switch m.Twist() {
	case TwistCW:
		return m + 1
	case TwistCCW:
		return m - 1
	default:
		return m
	}
}

// String returns the standard notation (U, U', U2, ...).
func (m Move) String() string {
	switch m.Twist() {
	case TwistCCW:
		return faceLetters[m.Face()] + "'"
	case TwistHalf:
		return faceLetters[m.Face()] + "2"
	default:
		return faceLetters[m.Face()]
	}
}

// AllMoves lists every face turn in enumeration order.
var AllMoves = func() []Move {
	ms := make([]Move, NumMoves)
	for i := range ms {
		ms[i] = Move(i)
	}
	return ms
}()

// Base quarter-turn definitions, expressed as the cube obtained by
// applying the turn to a solved cube (standard Kociemba cubie tables).
var baseCornerPerm = [6][8]uint8{
	FaceU: {UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
	FaceD: {URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
	FaceF: {UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
	FaceB: {URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
	FaceR: {DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
	FaceL: {URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
}

var baseCornerTwist = [6][8]uint8{
	FaceF: {1, 2, 0, 0, 2, 1, 0, 0},
	FaceB: {0, 0, 1, 2, 0, 0, 2, 1},
	FaceR: {2, 0, 0, 1, 1, 0, 0, 2},
	FaceL: {0, 1, 2, 0, 0, 2, 1, 0},
}

var baseEdgePerm = [6][12]uint8{
	FaceU: {UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
	FaceD: {UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
	FaceF: {UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
	FaceB: {UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
	FaceR: {FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
	FaceL: {UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
}

var baseEdgeFlip = [6][12]uint8{
	FaceF: {0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	FaceB: {0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
}

// moveCubes[m] is move m as a group element.
var moveCubes [NumMoves]Cube

func init() {
	for f := 0; f < 6; f++ {
		q := Cube{
			CP: baseCornerPerm[f],
			CO: baseCornerTwist[f],
			EP: baseEdgePerm[f],
			EO: baseEdgeFlip[f],
		}
		moveCubes[NewMove(f, TwistCW)] = q
		half := q.Multiply(&q)
		moveCubes[NewMove(f, TwistHalf)] = half
		moveCubes[NewMove(f, TwistCCW)] = half.Multiply(&q)
	}
}
