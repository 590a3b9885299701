package pong

// Rules selects between the historical physics and the fixed variant.
type Rules struct {
	// InPlaceRotation computes the rotated y from the already rotated x,
	// which is what the first version of the game did on every reset.
	InPlaceRotation bool

	// IgnorePaddleHeight bounces the ball whenever it is inside a paddle's
	// horizontal band, wherever it is vertically. When false, the ball must
	// also overlap the paddle vertically and be travelling toward it.
	IgnorePaddleHeight bool

	// InertRightPaddle disables the right paddle's hit test. The first
	// version compared the ball against the right band with the bounds
	// swapped, so the ball always passed straight through.
	InertRightPaddle bool
}

// LegacyRules keeps every quirk of the classic game.
func LegacyRules() Rules {
	return Rules{InPlaceRotation: true, IgnorePaddleHeight: true, InertRightPaddle: true}
}

// CorrectedRules uses a true rotation and full hit tests on both paddles.
func CorrectedRules() Rules {
	return Rules{}
}
