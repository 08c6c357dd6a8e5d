package config

// WindowConfig holds display and timing values shared by both modes.
type WindowConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	GroundY float64 `yaml:"groundY"`
	TPS     int     `yaml:"tps"`
	Title   string  `yaml:"title"`
}

// Dt returns the fixed per-tick timestep in seconds.
func (w WindowConfig) Dt() float64 {
	return 1.0 / float64(w.TPS)
}

// CatchConfig contains tuning for the falling-apple mode.
type CatchConfig struct {
	WalkSpeed     float64 `yaml:"walkSpeed"`     // px/s while a direction key is held
	MarginX       float64 `yaml:"marginX"`       // playfield clamp for the sprite center
	PickDuration  float64 `yaml:"pickDuration"`  // seconds the pick animation overrides display
	StartingLives int     `yaml:"startingLives"`
	SpawnInterval float64 `yaml:"spawnInterval"` // seconds between apple spawns
	SpawnMarginX  float64 `yaml:"spawnMarginX"`  // horizontal spawn band inset
	FallSpeed     float64 `yaml:"fallSpeed"`     // base fall speed, px/s
	FallJitter    float64 `yaml:"fallJitter"`    // +- px/s drawn once at spawn
	GoodReward    int     `yaml:"goodReward"`
	FlightArc     float64 `yaml:"flightArc"`
}

// RunnerConfig contains tuning for the auto-runner mode.
type RunnerConfig struct {
	PlayerX      float64 `yaml:"playerX"`      // fixed horizontal position
	JumpImpulse  float64 `yaml:"jumpImpulse"`  // upward impulse, px/s (applied negative)
	Gravity      float64 `yaml:"gravity"`      // px/s^2
	PickDuration float64 `yaml:"pickDuration"`
	SpawnMin     float64 `yaml:"spawnMin"` // uniform spawn interval bounds, seconds
	SpawnMax     float64 `yaml:"spawnMax"`
	BaseSpeed    float64 `yaml:"baseSpeed"` // px/s at t=0
	SpeedRamp    float64 `yaml:"speedRamp"` // px/s gained per elapsed second
	GoodReward   int     `yaml:"goodReward"`
	GroundSlack  float64 `yaml:"groundSlack"` // grounded test: bottom >= groundY - slack
	FlightArc    float64 `yaml:"flightArc"`
}

// AppleConfig contains values shared by apples in both modes.
type AppleConfig struct {
	GoodChance float64 `yaml:"goodChance"` // probability a spawn is "good"
	MinRadius  int     `yaml:"minRadius"`
	MaxRadius  int     `yaml:"maxRadius"`
	SpawnY     float64 `yaml:"spawnY"` // variant A spawn height (off the top edge)
	SpinRate   float64 `yaml:"spinRate"` // runner cosmetic spin, rad/s
}

// FlightConfig tunes the collected-apple flight effect.
type FlightConfig struct {
	Duration float64 `yaml:"duration"` // seconds
}

// PlayerConfig contains the boy's sprite and collision dimensions.
type PlayerConfig struct {
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
	FrameWidth      int     `yaml:"frameWidth"`
	FrameHeight     int     `yaml:"frameHeight"`
}

// VisionConfig locates the classifier checkpoint.
type VisionConfig struct {
	ModelPath string `yaml:"modelPath"`
	QueueSize int    `yaml:"queueSize"` // pending classification jobs before drops
}

// SoundConfig tunes the synthesized cues.
type SoundConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"`
}

var (
	C = WindowConfig{
		Width:   960,
		Height:  600,
		GroundY: 500,
		TPS:     60,
		Title:   "Orchard",
	}

	Catch = CatchConfig{
		WalkSpeed:     300,
		MarginX:       60,
		PickDuration:  0.4,
		StartingLives: 3,
		SpawnInterval: 1.5,
		SpawnMarginX:  100,
		FallSpeed:     200,
		FallJitter:    30,
		GoodReward:    1,
		FlightArc:     60,
	}

	Runner = RunnerConfig{
		PlayerX:      140,
		JumpImpulse:  620,
		Gravity:      1600,
		PickDuration: 0.3,
		SpawnMin:     1.2,
		SpawnMax:     2.5,
		BaseSpeed:    220,
		SpeedRamp:    5,
		GoodReward:   10,
		GroundSlack:  5,
		FlightArc:    50,
	}

	Apple = AppleConfig{
		GoodChance: 0.65,
		MinRadius:  28,
		MaxRadius:  36,
		SpawnY:     -50,
		SpinRate:   4,
	}

	Flight = FlightConfig{
		Duration: 0.6,
	}

	Player = PlayerConfig{
		CollisionWidth:  64,
		CollisionHeight: 150,
		FrameWidth:      100,
		FrameHeight:     160,
	}

	Vision = VisionConfig{
		ModelPath: "models/apple_cnn.gob",
		QueueSize: 8,
	}

	Sound = SoundConfig{
		SampleRate: 44100,
		Volume:     0.5,
	}
)
