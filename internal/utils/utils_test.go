package utils

import (
	"strings"
	"testing"
	"time"
)

func TestSplitNames(t *testing.T) {
	got := SplitNames(" junior, senior ,,Mid-level ")
	if len(got) != 3 || got[0] != "junior" || got[1] != "senior" || got[2] != "Mid-level" {
		t.Errorf("SplitNames = %v", got)
	}
	if SplitNames("") != nil {
		t.Error("SplitNames(\"\") should be nil")
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID(8)
	if len(id) != 8 {
		t.Fatalf("expected length 8, got %d", len(id))
	}
	for _, r := range id {
		if !strings.ContainsRune(idAlphabet, r) {
			t.Errorf("unexpected character %q", r)
		}
	}

	// Collisions over a handful of draws would mean broken randomness.
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		v := GenerateID(8)
		if seen[v] {
			t.Fatalf("duplicate id %s", v)
		}
		seen[v] = true
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPasswordHash("hunter22", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("hunter23", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGetUserLevel(t *testing.T) {
	cases := []struct {
		points int
		want   string
	}{
		{0, "Newcomer"},
		{11, "Explorer"},
		{51, "Contributor"},
		{201, "Guide"},
		{1000, "Luminary"},
	}
	for _, c := range cases {
		if name, _ := GetUserLevel(c.points); name != c.want {
			t.Errorf("GetUserLevel(%d) = %s, want %s", c.points, name, c.want)
		}
	}
}

func TestCalculateScoreDecays(t *testing.T) {
	fresh := CalculateScore(time.Now().Add(-1*time.Hour), 10, 0, 2, 5)
	stale := CalculateScore(time.Now().Add(-48*time.Hour), 10, 0, 2, 5)
	if fresh <= stale {
		t.Errorf("fresh post should outrank stale one: %f <= %f", fresh, stale)
	}

	if got := CalculateScore(time.Now(), 0, 0, 0, 0); got != 0 {
		t.Errorf("no engagement should score 0, got %f", got)
	}

	// Heavy downvotes cannot push the score below zero.
	if got := CalculateScore(time.Now(), 0, 50, 0, 0); got != 0 {
		t.Errorf("downvoted-only post should floor at 0, got %f", got)
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	out := string(RenderMarkdown("**bold** <script>alert(1)</script>"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("markdown not rendered: %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("script tag survived sanitization: %s", out)
	}
}
