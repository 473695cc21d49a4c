package service

import (
	"errors"
	"testing"
)

func TestLevelFor(t *testing.T) {
	cases := []struct {
		xp, level int
	}{
		{0, 1}, {99, 1}, {100, 2}, {110, 2}, {199, 2}, {250, 3}, {1000, 11},
	}
	for _, c := range cases {
		got, err := LevelFor(c.xp)
		if err != nil {
			t.Fatalf("LevelFor(%d): %v", c.xp, err)
		}
		if got != c.level {
			t.Errorf("LevelFor(%d) = %d, want %d", c.xp, got, c.level)
		}
	}
}

func TestLevelFor_Negative(t *testing.T) {
	if _, err := LevelFor(-1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestLevelProgress(t *testing.T) {
	if got := XPForNextLevel(2); got != 200 {
		t.Errorf("XPForNextLevel(2) = %d", got)
	}
	pct, err := LevelProgressPercent(150)
	if err != nil || pct != 50 {
		t.Errorf("LevelProgressPercent(150) = %v, %v", pct, err)
	}
	pct, err = LevelProgressPercent(200)
	if err != nil || pct != 0 {
		t.Errorf("LevelProgressPercent(200) = %v, %v", pct, err)
	}
}

func TestXPEarned(t *testing.T) {
	cases := []struct {
		correct bool
		reward  int
		want    int
	}{
		{true, 100, 100},
		{false, 100, 30},
		{false, 30, 9},
		{false, 7, 2},
		{false, 3, 0},
		{true, 0, 0},
	}
	for _, c := range cases {
		if got := XPEarned(c.correct, c.reward); got != c.want {
			t.Errorf("XPEarned(%v, %d) = %d, want %d", c.correct, c.reward, got, c.want)
		}
	}
}
