package services

import (
	"html/template"
	"sort"

	"mentorlink/internal/models"
	"mentorlink/internal/utils"
)

// CommentNode is a comment decorated for display: the row itself,
// rendered markdown and its direct replies. Replies is computed at read
// time and never persisted.
type CommentNode struct {
	models.Comment
	ContentHTML template.HTML  `json:"content_html"`
	Replies     []*CommentNode `json:"replies"`
}

// BuildCommentTree nests a flat comment result set into a reply tree.
//
// A comment is a root when it has no parent id or when its parent id is
// not in the input set (orphans are promoted, never dropped). When
// maxDepth > 0, a comment whose depth along its original ancestry chain
// reaches maxDepth is detached and surfaces as a root; each comment is
// judged against its own original depth only, so the children of a
// flattened comment are not re-evaluated from depth 0. maxDepth <= 0
// means unlimited nesting. Every replies list, and the returned root
// list, is sorted by created_at ascending.
func BuildCommentTree(comments []models.Comment, maxDepth int) []*CommentNode {
	nodes := make(map[uint]*CommentNode, len(comments))
	for i := range comments {
		c := comments[i]
		nodes[c.ID] = &CommentNode{
			Comment:     c,
			ContentHTML: utils.RenderMarkdown(c.Content),
			Replies:     []*CommentNode{},
		}
	}

	// Depth along the original ancestry chain, walked iteratively.
	// Unresolvable parents end the walk; a walk longer than the input
	// size means a reference cycle and the ok result turns false.
	depthOf := func(c *CommentNode) (int, bool) {
		depth := 0
		cur := c.ParentID
		for cur != nil {
			parent, ok := nodes[*cur]
			if !ok {
				break
			}
			depth++
			if depth > len(nodes) {
				return 0, false
			}
			cur = parent.ParentID
		}
		return depth, true
	}

	roots := make([]*CommentNode, 0)
	for i := range comments {
		node := nodes[comments[i].ID]

		depth, ok := depthOf(node)
		// Cycle participants surface as roots, like orphans.
		flattened := !ok || (maxDepth > 0 && depth >= maxDepth)

		var parent *CommentNode
		if node.ParentID != nil && !flattened {
			parent = nodes[*node.ParentID]
		}
		if parent == nil {
			roots = append(roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	sortNodes(roots)
	for _, node := range nodes {
		sortNodes(node.Replies)
	}
	return roots
}

func sortNodes(nodes []*CommentNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].CreatedAt.Before(nodes[j].CreatedAt)
	})
}
