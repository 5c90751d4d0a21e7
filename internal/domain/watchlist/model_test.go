package watchlist

import "testing"

func TestWatchlistAddRemove(t *testing.T) {
	w := Watchlist{UserID: "1"}

	if !w.Add("4") {
		t.Fatalf("expected first add to change the list")
	}
	if w.Add("4") {
		t.Fatalf("expected duplicate add to be ignored")
	}
	w.Add("5")
	if len(w.GameIDs) != 2 || w.GameIDs[0] != "4" || w.GameIDs[1] != "5" {
		t.Fatalf("unexpected game ids: %v", w.GameIDs)
	}

	if !w.Remove("4") {
		t.Fatalf("expected remove to change the list")
	}
	if w.Remove("4") {
		t.Fatalf("expected second remove to be a no-op")
	}
	if w.Contains("4") || !w.Contains("5") {
		t.Fatalf("unexpected contents: %v", w.GameIDs)
	}
}

func TestWatchlistValidate(t *testing.T) {
	if err := (Watchlist{UserID: "1", GameIDs: []string{"4", "5"}}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Watchlist{GameIDs: []string{"4"}}).Validate(); err == nil {
		t.Fatalf("expected error for missing user")
	}
	if err := (Watchlist{UserID: "1", GameIDs: []string{"4", "4"}}).Validate(); err == nil {
		t.Fatalf("expected error for duplicate game")
	}
}
