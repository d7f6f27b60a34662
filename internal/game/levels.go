package game

type StageConfig struct {
	PaddleWidth float64 `yaml:"paddle_width"`
	Bombs       int     `yaml:"bombs"`
}

// DefaultStages returns the built-in progression.
// The paddle narrows each stage while the bomb count grows, so later stages
// trade precision for bigger chain reactions.
func DefaultStages() []StageConfig {
	return []StageConfig{
		{PaddleWidth: 120, Bombs: 3},
		{PaddleWidth: 100, Bombs: 5},
		{PaddleWidth: 80, Bombs: 8},
	}
}

// GetStageConfig returns settings for a 1-based stage number.
// Stages past the end of the table reuse the last entry.
func GetStageConfig(stages []StageConfig, stage int) StageConfig {
	if len(stages) == 0 {
		stages = DefaultStages()
	}
	idx := clamp(stage-1, 0, len(stages)-1)
	return stages[idx]
}
