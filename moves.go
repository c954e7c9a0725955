package fmctrainer

// Predefined moves for convenience.
var (
	U      = Move{Face: FaceU, Turn: CW}
	UPrime = Move{Face: FaceU, Turn: CCW}
	U2     = Move{Face: FaceU, Turn: Double}

	D      = Move{Face: FaceD, Turn: CW}
	DPrime = Move{Face: FaceD, Turn: CCW}
	D2     = Move{Face: FaceD, Turn: Double}

	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}
	F2     = Move{Face: FaceF, Turn: Double}

	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}

	R      = Move{Face: FaceR, Turn: CW}
	RPrime = Move{Face: FaceR, Turn: CCW}
	R2     = Move{Face: FaceR, Turn: Double}

	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}
)
