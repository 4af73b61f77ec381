package scores

import (
	"path/filepath"
	"testing"
)

func TestArchiveRecordAndBest(t *testing.T) {
	archive, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer archive.Close()

	runs := []Run{
		{Seed: 1, Score: 40, Turns: 200, Catches: 3},
		{Seed: 2, Score: 120, Turns: 350, Catches: 6, Legendary: true},
		{Seed: 3, Score: 15, Turns: 90, Catches: 1},
	}
	for _, r := range runs {
		if err := archive.Record(r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	best, err := archive.Best(2)
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(best))
	}
	if best[0].Score != 120 || !best[0].Legendary {
		t.Errorf("Top run mismatch: %+v", best[0])
	}
	if best[1].Score != 40 {
		t.Errorf("Second run mismatch: %+v", best[1])
	}
}

func TestArchiveSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	archive, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := archive.Record(Run{Seed: 9, Score: 77, Turns: 10, Catches: 2}); err != nil {
		t.Fatal(err)
	}
	archive.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	best, err := reopened.Best(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(best) != 1 || best[0].Score != 77 {
		t.Errorf("Journal must survive reopen, got %+v", best)
	}
}
