package game

// Frame timing.
// Motion constants below are expressed per nominal frame at TargetFPS.
const (
	TargetFPS      = 60.0
	TargetInterval = 1000.0 / TargetFPS // ms
	MaxFrameScale  = 2.5
)

// Default canvas, used until a front-end reports its real size.
const (
	CanvasWidth  = 480
	CanvasHeight = 720
)

// Brick grid layout (canvas pixels).
const (
	BrickCols       = 10
	BrickRows       = 16
	BrickHeight     = 18
	BrickPadding    = 2
	BrickOffsetTop  = 70
	BrickOffsetLeft = 10
	PointsPerBrick  = 10
)

// Paddle.
const (
	PaddleHeight    = 12
	PaddleBottomGap = 10
	PaddleKeySpeed  = 7.0
	PaddleCurve     = 1.8
	PaddleMaxAngle  = 60.0 // degrees from vertical
	MinBounceDY     = 2.0
)

// Ball.
const (
	BallRadius    = 6.0
	BaseSpeed     = 6.0
	SpeedRange    = 2.0
	LaunchSpread  = 80.0 // degrees, centred on vertical
	LaunchYOffset = 80.0 // launch height above canvas bottom
)

// Progression.
const MaxLives = 3

// Bomb blast footprint, in cells relative to the detonating brick.
const (
	BlastNear = 2
	BlastFar  = 3
)

// Screen shake per detonating bomb.
const (
	BombShakeIntensity = 6.0
	BombShakeDuration  = 0.35
)

// Effects.
const (
	MaxParticles       = 4096
	ParticlesPerBrick  = 6
	ParticlesPerBomb   = 24
	ParticleGravity    = 0.15
	FlashAlpha         = 0.6
	FlashDecay         = 0.12
	MaxParticleRender  = 8192
	ParticleSizeMin    = 2.0
	ParticleSizeSpread = 4.0
)
