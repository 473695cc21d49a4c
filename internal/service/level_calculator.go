package service

import "fmt"

// XPPerLevel is the fixed step between consecutive levels.
const XPPerLevel = 100

// LevelFor maps cumulative XP to a level, starting at 1.
func LevelFor(totalXP int) (int, error) {
	if totalXP < 0 {
		return 0, fmt.Errorf("%w: total xp must not be negative, got %d", ErrInvalidInput, totalXP)
	}
	return totalXP/XPPerLevel + 1, nil
}

// XPForNextLevel returns the XP total at which level rolls over to level+1.
func XPForNextLevel(level int) int {
	return level * XPPerLevel
}

// LevelProgressPercent is how far totalXP is through its current level, 0-100.
func LevelProgressPercent(totalXP int) (float64, error) {
	if totalXP < 0 {
		return 0, fmt.Errorf("%w: total xp must not be negative, got %d", ErrInvalidInput, totalXP)
	}
	return float64(totalXP%XPPerLevel) / XPPerLevel * 100, nil
}

// storedLevel is LevelFor for values read back from the store, which are
// never negative.
func storedLevel(totalXP int) int {
	level, err := LevelFor(totalXP)
	if err != nil {
		return 1
	}
	return level
}

// XPEarned is the full reward for a correct answer and 30% of it, rounded
// down, otherwise.
func XPEarned(isCorrect bool, xpReward int) int {
	if isCorrect {
		return xpReward
	}
	return xpReward * 3 / 10
}
