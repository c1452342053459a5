package repository

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/repository"
	"github.com/eslsoft/lexiroad/internal/store"
	"github.com/eslsoft/lexiroad/pkg/filterexpr"
)

// StateSource yields the latest committed state. *store.Store satisfies it.
type StateSource interface {
	Snapshot() store.State
}

const (
	attrCreatedAt       = "created_at"
	attrUpdatedAt       = "updated_at"
	attrName            = "name"
	attrFavoriteCount   = "favorite_count"
	attrCopyCount       = "copy_count"
	attrEnrollmentCount = "enrollment_count"
	attrID              = "id"
)

// listParams receives the bound filter and order_by of a catalog list request.
type listParams struct {
	Keyword       *string
	NamePrefix    *string
	Language      *string
	Languages     []string
	Visibility    *string
	IsPublic      *bool
	OwnerID       *string
	Level         *string
	Levels        []string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

// catalogItem is the comparable projection shared by dictionaries, grammars and roadmaps.
type catalogItem struct {
	ID              string
	Name            string
	Description     string
	OwnerID         string
	Languages       []entity.Language
	Level           entity.Level
	IsPublic        bool
	FavoriteCount   int
	CopyCount       int
	EnrollmentCount int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p *listParams) matches(item catalogItem) bool {
	if p.Keyword != nil && !containsFold(item.Name, *p.Keyword) && !containsFold(item.Description, *p.Keyword) {
		return false
	}
	if p.NamePrefix != nil && !strings.HasPrefix(strings.ToLower(item.Name), strings.ToLower(*p.NamePrefix)) {
		return false
	}
	if p.Language != nil && !speaksAny(item.Languages, []string{*p.Language}) {
		return false
	}
	if p.Languages != nil && !speaksAny(item.Languages, p.Languages) {
		return false
	}
	if p.Visibility != nil && !strings.EqualFold(string(entity.VisibilityOf(item.IsPublic)), *p.Visibility) {
		return false
	}
	if p.IsPublic != nil && item.IsPublic != *p.IsPublic {
		return false
	}
	if p.OwnerID != nil && item.OwnerID != *p.OwnerID {
		return false
	}
	if p.Level != nil && !strings.EqualFold(string(item.Level), *p.Level) {
		return false
	}
	if p.Levels != nil && !lo.ContainsBy(p.Levels, func(l string) bool { return strings.EqualFold(string(item.Level), l) }) {
		return false
	}
	if p.CreatedAfter != nil && item.CreatedAt.Before(*p.CreatedAfter) {
		return false
	}
	if p.CreatedBefore != nil && item.CreatedAt.After(*p.CreatedBefore) {
		return false
	}
	return true
}

// normalize lowercases and dedupes the list operands. An explicit empty list still matches nothing.
func (p *listParams) normalize() {
	if p.Languages != nil {
		p.Languages = append([]string{}, uniqueLower(p.Languages)...)
	}
	if p.Levels != nil {
		p.Levels = append([]string{}, uniqueLower(p.Levels)...)
	}
}

func uniqueLower(in []string) []string {
	out := lo.FilterMap(in, func(item string, _ int) (string, bool) {
		trimmed := strings.ToLower(strings.TrimSpace(item))
		return trimmed, trimmed != ""
	})
	return lo.Uniq(out)
}

func speaksAny(have []entity.Language, want []string) bool {
	return lo.ContainsBy(have, func(l entity.Language) bool {
		return lo.ContainsBy(want, func(w string) bool { return l.Equal(entity.Language(strings.TrimSpace(w))) })
	})
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func compareAttr(attr string, a, b catalogItem) int {
	switch attr {
	case attrCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case attrUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case attrName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case attrFavoriteCount:
		return cmp.Compare(a.FavoriteCount, b.FavoriteCount)
	case attrCopyCount:
		return cmp.Compare(a.CopyCount, b.CopyCount)
	case attrEnrollmentCount:
		return cmp.Compare(a.EnrollmentCount, b.EnrollmentCount)
	default:
		return strings.Compare(a.ID, b.ID)
	}
}

type rankedRow[T any] struct {
	value T
	item  catalogItem
}

// selectPage filters, orders and paginates items. total counts every match before pagination.
func selectPage[T any](items []T, project func(T) catalogItem, p *listParams, orderFields map[string]string, page repository.Pagination) ([]T, int64) {
	rows := make([]rankedRow[T], 0, len(items))
	for _, v := range items {
		item := project(v)
		if p.matches(item) {
			rows = append(rows, rankedRow[T]{value: v, item: item})
		}
	}

	primary, secondary := orderFields[p.PrimaryKey], orderFields[p.SecondaryKey]
	slices.SortStableFunc(rows, func(a, b rankedRow[T]) int {
		if c := directed(compareAttr(primary, a.item, b.item), p.PrimaryDesc); c != 0 {
			return c
		}
		return directed(compareAttr(secondary, a.item, b.item), p.SecondaryDesc)
	})

	total := int64(len(rows))
	if page.PageSize > 0 {
		offset := int(page.Offset())
		if offset >= len(rows) {
			rows = nil
		} else {
			rows = rows[offset:min(offset+int(page.PageSize), len(rows))]
		}
	}

	return lo.Map(rows, func(r rankedRow[T], _ int) T { return r.value }), total
}

func directed(c int, desc bool) int {
	if desc {
		return -c
	}
	return c
}

func orderExprs(fields map[string]filterexpr.OrderField) map[string]string {
	return lo.MapValues(fields, func(f filterexpr.OrderField, _ string) string { return f.Expr })
}
