package physics

// Params holds every tuning constant of the court model. Angles are in
// radians, hold times in milliseconds, everything else in pixels or pixels
// per frame.
type Params struct {
	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64

	PaddleSpeed        float64 // base target speed while a key is held
	PaddleAcceleration float64
	PaddleBoost        float64 // multiplier on the hold-time acceleration
	MaxPaddleSpeed     float64
	PaddleDeceleration float64 // fraction of speed lost to friction each frame
	StopEpsilon        float64
	Smoothing          float64 // fraction of the gap to the target speed closed each frame
	HoldRamp           float64
	MaxHoldFactor      float64

	BallRadius       float64
	InitialBallSpeed float64
	MaxBallSpeed     float64
	SpeedIncrement   float64
	MaxBounceAngle   float64
	LaunchCone       float64

	SpinFactor      float64
	SpinDecay       float64
	SpinCurve       float64
	SpinBounce      float64
	WallFriction    float64
	XCurveThreshold float64
	XCurveFraction  float64
	XBounceFraction float64
}
