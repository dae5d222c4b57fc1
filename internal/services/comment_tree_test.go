package services

import (
	"testing"
	"time"

	"mentorlink/internal/models"
)

func ptr(v uint) *uint { return &v }

// chain builds a linked list of n comments: 1 <- 2 <- ... <- n.
func chain(n int) []models.Comment {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	comments := make([]models.Comment, n)
	for i := 0; i < n; i++ {
		c := models.Comment{
			ID:        uint(i + 1),
			Content:   "c",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if i > 0 {
			c.ParentID = ptr(uint(i))
		}
		comments[i] = c
	}
	return comments
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	got := BuildCommentTree(nil, 5)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no roots, got %d", len(got))
	}
}

func TestBuildCommentTreeSingle(t *testing.T) {
	got := BuildCommentTree(chain(1), 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 root, got %d", len(got))
	}
	if got[0].Replies == nil {
		t.Error("Replies must be initialized, never nil")
	}
	if len(got[0].Replies) != 0 {
		t.Errorf("expected no replies, got %d", len(got[0].Replies))
	}
}

func TestBuildCommentTreeTwoReplies(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		{ID: 1, Content: "root", CreatedAt: base},
		// Input order deliberately puts the later reply first: the
		// replies list must still come back sorted by created_at.
		{ID: 3, ParentID: ptr(1), Content: "second reply", CreatedAt: base.Add(2 * time.Minute)},
		{ID: 2, ParentID: ptr(1), Content: "first reply", CreatedAt: base.Add(1 * time.Minute)},
	}

	got := BuildCommentTree(comments, 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 root, got %d", len(got))
	}
	root := got[0]
	if root.ID != 1 {
		t.Fatalf("expected comment 1 as root, got %d", root.ID)
	}
	if len(root.Replies) != 2 {
		t.Fatalf("expected 2 replies, got %d", len(root.Replies))
	}
	if root.Replies[0].ID != 2 || root.Replies[1].ID != 3 {
		t.Errorf("replies out of created_at order: %d, %d", root.Replies[0].ID, root.Replies[1].ID)
	}
}

func TestBuildCommentTreeOrphanPromoted(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		{ID: 1, Content: "root", CreatedAt: base},
		{ID: 2, ParentID: ptr(99), Content: "orphan", CreatedAt: base.Add(time.Minute)},
	}

	got := BuildCommentTree(comments, 5)
	if len(got) != 2 {
		t.Fatalf("expected orphan promoted to root, got %d roots", len(got))
	}
	if got[1].ID != 2 {
		t.Errorf("expected orphan as second root, got %d", got[1].ID)
	}
}

func TestBuildCommentTreeDepthFlattening(t *testing.T) {
	// 5-deep chain, maxDepth 2: comments at depth 0 and 1 stay nested,
	// every deeper comment surfaces at root level on its own.
	got := BuildCommentTree(chain(5), 2)

	if len(got) != 4 {
		t.Fatalf("expected 4 roots (1 natural + 3 flattened), got %d", len(got))
	}
	if got[0].ID != 1 {
		t.Fatalf("expected comment 1 first, got %d", got[0].ID)
	}
	if len(got[0].Replies) != 1 || got[0].Replies[0].ID != 2 {
		t.Fatal("comment 2 (depth 1) should stay nested under the root")
	}
	// Comment 3 was flattened; comment 4 was flattened independently,
	// judged by its original ancestry, so 3 keeps no replies.
	for i, wantID := range []uint{3, 4, 5} {
		node := got[i+1]
		if node.ID != wantID {
			t.Errorf("root %d: expected comment %d, got %d", i+1, wantID, node.ID)
		}
		if len(node.Replies) != 0 {
			t.Errorf("flattened comment %d should have no nested replies", node.ID)
		}
	}
}

func TestBuildCommentTreeDepthFive(t *testing.T) {
	got := BuildCommentTree(chain(7), 5)
	if len(got) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(got))
	}
	// The first five stay one chain.
	depth := 0
	node := got[0]
	for len(node.Replies) > 0 {
		node = node.Replies[0]
		depth++
	}
	if depth != 4 {
		t.Errorf("expected nested chain of depth 4, got %d", depth)
	}
}

func TestBuildCommentTreeUnlimitedDepth(t *testing.T) {
	// maxDepth <= 0 disables the cap entirely.
	for _, maxDepth := range []int{0, -1} {
		got := BuildCommentTree(chain(10), maxDepth)
		if len(got) != 1 {
			t.Fatalf("maxDepth=%d: expected a single root, got %d", maxDepth, len(got))
		}
		depth := 0
		node := got[0]
		for len(node.Replies) > 0 {
			node = node.Replies[0]
			depth++
		}
		if depth != 9 {
			t.Errorf("maxDepth=%d: expected full chain depth 9, got %d", maxDepth, depth)
		}
	}
}

func TestBuildCommentTreeSelfReference(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		{ID: 1, ParentID: ptr(1), Content: "self", CreatedAt: base},
		{ID: 2, ParentID: ptr(3), Content: "cycle a", CreatedAt: base.Add(time.Minute)},
		{ID: 3, ParentID: ptr(2), Content: "cycle b", CreatedAt: base.Add(2 * time.Minute)},
	}

	got := BuildCommentTree(comments, 5)
	if len(got) != 3 {
		t.Fatalf("cycle members should all surface as roots, got %d", len(got))
	}
}

func TestBuildCommentTreePreservesFields(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{{
		ID:        7,
		Cid:       "ab12cd34",
		PostID:    3,
		UserID:    11,
		Content:   "**hello**",
		Score:     4,
		CreatedAt: base,
		UpdatedAt: base.Add(time.Minute),
	}}

	got := BuildCommentTree(comments, 0)
	if len(got) != 1 {
		t.Fatalf("expected 1 root, got %d", len(got))
	}
	node := got[0]
	if node.Cid != "ab12cd34" || node.PostID != 3 || node.UserID != 11 ||
		node.Score != 4 || node.Content != "**hello**" || !node.UpdatedAt.Equal(base.Add(time.Minute)) {
		t.Error("input fields must be preserved unchanged on the node")
	}
	if node.ContentHTML == "" {
		t.Error("expected rendered markdown on the node")
	}
}
