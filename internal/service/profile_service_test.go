package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/ShambaQuest/internal/dto"
)

func TestAccuracyRate(t *testing.T) {
	cases := []struct {
		correct, total int64
		want           int
	}{
		{0, 0, 0}, {1, 3, 33}, {2, 3, 67}, {5, 5, 100},
	}
	for _, c := range cases {
		if got := AccuracyRate(c.correct, c.total); got != c.want {
			t.Errorf("AccuracyRate(%d, %d) = %d, want %d", c.correct, c.total, got, c.want)
		}
	}
}

func TestProfileService_DashboardAfterSubmissions(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	submit := f.service(stubEvaluator{eval: Evaluation{IsCorrect: true, Feedback: "ok"}})
	if _, err := submit.Submit(ctx, dto.SubmitQuizRequest{QuestionID: "q1", UserID: "farmer-1", UserAnswer: "a"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	wrong := f.service(stubEvaluator{eval: Evaluation{IsCorrect: false, Feedback: "no"}})
	if _, err := wrong.Submit(ctx, dto.SubmitQuizRequest{QuestionID: "q1", UserID: "farmer-1", UserAnswer: "b"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	profiles := NewProfileService(f.profileRepo, f.attemptRepo, f.badgeRepo)
	dash, err := profiles.GetDashboard(ctx, "farmer-1")
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if dash.Profile.TotalXP != 130 || dash.Profile.CurrentLevel != 2 || dash.Profile.XPForNextLevel != 200 {
		t.Fatalf("profile = %+v", dash.Profile)
	}
	if dash.Profile.LevelProgressPercent != 30 {
		t.Fatalf("LevelProgressPercent = %v", dash.Profile.LevelProgressPercent)
	}
	if dash.TotalAttempts != 2 || dash.CorrectAttempts != 1 || dash.AccuracyRate != 50 {
		t.Fatalf("stats = %d/%d/%d", dash.TotalAttempts, dash.CorrectAttempts, dash.AccuracyRate)
	}
	if dash.BadgeCount != 3 || len(dash.RecentAttempts) != 2 {
		t.Fatalf("badges=%d recent=%d", dash.BadgeCount, len(dash.RecentAttempts))
	}
	if dash.RecentAttempts[0].Category != "crop science" {
		t.Fatalf("recent attempt = %+v", dash.RecentAttempts[0])
	}

	badges, err := profiles.GetBadges(ctx, "farmer-1")
	if err != nil || len(badges) != 3 {
		t.Fatalf("GetBadges = %+v, %v", badges, err)
	}
}

func TestProfileService_NewUserDefaults(t *testing.T) {
	f := newSubmissionFixture(t)
	profiles := NewProfileService(f.profileRepo, f.attemptRepo, f.badgeRepo)

	p, err := profiles.GetProfile(context.Background(), "newcomer")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.TotalXP != 0 || p.CurrentLevel != 1 || p.Interests == nil {
		t.Fatalf("got %+v", p)
	}
}

func TestProfileService_CompleteOnboarding(t *testing.T) {
	f := newSubmissionFixture(t)
	profiles := NewProfileService(f.profileRepo, f.attemptRepo, f.badgeRepo)
	ctx := context.Background()

	p, err := profiles.CompleteOnboarding(ctx, "farmer-9", dto.OnboardingRequest{ExperienceLevel: "intermediate", Interests: []string{"soil", "water"}})
	if err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}
	if p.ExperienceLevel != "intermediate" || len(p.Interests) != 2 || p.CurrentLevel != 1 {
		t.Fatalf("got %+v", p)
	}

	stored, err := f.profileRepo.FindByID(ctx, "farmer-9")
	if err != nil || stored.Interests[1] != "water" {
		t.Fatalf("stored = %+v, %v", stored, err)
	}

	if _, err := profiles.CompleteOnboarding(ctx, "farmer-9", dto.OnboardingRequest{ExperienceLevel: "guru"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
