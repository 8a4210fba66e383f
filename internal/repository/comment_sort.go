package repository

import (
	"fmt"
	"strings"

	"blog-api/internal/domain"
)

// Sort fields accepted by the comment listings
const (
	SortByCreatedAt    = "created_at"
	SortByLikesCount   = "likes_count"
	SortByRepliesCount = "replies_count"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Live counters, correlated on the outer comments row. The same expressions
// feed SELECT, ORDER BY and the cursor predicate so a page never mixes two
// different readings of a count.
const (
	likesCountExpr    = "(SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = comments.id)"
	dislikesCountExpr = "(SELECT COUNT(*) FROM comment_dislikes WHERE comment_dislikes.comment_id = comments.id)"
	reportsCountExpr  = "(SELECT COUNT(*) FROM comment_reports WHERE comment_reports.comment_id = comments.id)"
	repliesCountExpr  = "(SELECT COUNT(*) FROM comments AS replies WHERE replies.parent_id = comments.id AND replies.deleted_at IS NULL)"
)

// commentColumns selects the comment row together with its derived counters
var commentColumns = strings.Join([]string{
	"comments.*",
	likesCountExpr + " AS likes_count",
	dislikesCountExpr + " AS dislikes_count",
	reportsCountExpr + " AS reports_count",
	repliesCountExpr + " AS replies_count",
}, ", ")

// SortKey is a resolved ordering over comments with id as the final tie-break
type SortKey struct {
	Field string
	Desc  bool
	expr  string
	value func(*domain.Comment) interface{}
}

// ResolveSort maps a sort field and direction to a SortKey
func ResolveSort(sortBy, sortOrder string) (SortKey, error) {
	if sortBy == "" {
		sortBy = SortByCreatedAt
	}
	if sortOrder == "" {
		sortOrder = SortDesc
	}

	var key SortKey
	switch sortBy {
	case SortByCreatedAt:
		key = SortKey{expr: "comments.created_at", value: func(c *domain.Comment) interface{} { return c.CreatedAt }}
	case SortByLikesCount:
		key = SortKey{expr: likesCountExpr, value: func(c *domain.Comment) interface{} { return c.LikesCount }}
	case SortByRepliesCount:
		key = SortKey{expr: repliesCountExpr, value: func(c *domain.Comment) interface{} { return c.RepliesCount }}
	default:
		return SortKey{}, fmt.Errorf("unsupported sort field %q", sortBy)
	}
	key.Field = sortBy

	switch sortOrder {
	case SortDesc:
		key.Desc = true
	case SortAsc:
	default:
		return SortKey{}, fmt.Errorf("unsupported sort order %q", sortOrder)
	}

	return key, nil
}

// MustResolveSort is ResolveSort for statically known arguments
func MustResolveSort(sortBy, sortOrder string) SortKey {
	key, err := ResolveSort(sortBy, sortOrder)
	if err != nil {
		panic(err)
	}
	return key
}

func (k SortKey) direction() string {
	if k.Desc {
		return "DESC"
	}
	return "ASC"
}

// OrderBy returns the ORDER BY clause, primary key first and comments.id in the same direction
func (k SortKey) OrderBy() string {
	dir := k.direction()
	return fmt.Sprintf("%s %s, comments.id %s", k.expr, dir, dir)
}

// After returns the predicate selecting rows strictly past the cursor in this ordering
func (k SortKey) After(c *Cursor) (string, []interface{}) {
	op := ">"
	if k.Desc {
		op = "<"
	}
	query := fmt.Sprintf("((%s %s ?) OR (%s = ? AND comments.id %s ?))", k.expr, op, k.expr, op)
	return query, []interface{}{c.Value, c.Value, c.ID}
}
