package review

import (
	"testing"

	"github.com/riskibarqy/gamelog/internal/domain/game"
	"github.com/riskibarqy/gamelog/internal/domain/user"
)

func TestReviewValidate(t *testing.T) {
	base := Review{
		ID:      "r1",
		User:    user.User{ID: "1"},
		Game:    game.Game{ID: "1"},
		Rating:  4.5,
		Content: "Amazing derby",
		Tags:    []string{"derby", "Derby"},
	}

	tests := []struct {
		name    string
		mutate  func(r *Review)
		wantErr bool
	}{
		{name: "valid fractional rating", mutate: func(r *Review) {}},
		{name: "zero rating allowed", mutate: func(r *Review) { r.Rating = 0 }},
		{name: "max rating allowed", mutate: func(r *Review) { r.Rating = 5 }},
		{name: "rating above max", mutate: func(r *Review) { r.Rating = 5.5 }, wantErr: true},
		{name: "negative rating", mutate: func(r *Review) { r.Rating = -0.5 }, wantErr: true},
		{name: "blank content", mutate: func(r *Review) { r.Content = "   " }, wantErr: true},
		{name: "missing author", mutate: func(r *Review) { r.User.ID = "" }, wantErr: true},
		{name: "missing game", mutate: func(r *Review) { r.Game.ID = "" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := base
			tc.mutate(&r)
			err := r.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
