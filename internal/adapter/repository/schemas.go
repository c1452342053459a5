package repository

import (
	"github.com/samber/lo"

	"github.com/eslsoft/lexiroad/pkg/filterexpr"
)

var catalogFilterFields = map[string]filterexpr.FilterField{
	"keyword": {
		Kind: filterexpr.KindString,
		Ops: map[filterexpr.Op]string{
			filterexpr.OpEQ: "Keyword",
			filterexpr.OpCT: "Keyword",
		},
	},
	"name": {
		Kind: filterexpr.KindString,
		Ops: map[filterexpr.Op]string{
			filterexpr.OpSW: "NamePrefix",
			filterexpr.OpCT: "Keyword",
		},
	},
	"language": {
		Kind: filterexpr.KindString,
		Ops: map[filterexpr.Op]string{
			filterexpr.OpEQ: "Language",
			filterexpr.OpIN: "Languages",
		},
	},
	"visibility": {
		Kind: filterexpr.KindString,
		Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Visibility"},
	},
	"is_public": {
		Kind: filterexpr.KindBool,
		Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "IsPublic"},
	},
	"owner_id": {
		Kind: filterexpr.KindString,
		Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "OwnerID"},
	},
	"created_at": {
		Kind: filterexpr.KindTimestamp,
		Ops: map[filterexpr.Op]string{
			filterexpr.OpGTE: "CreatedAfter",
			filterexpr.OpLTE: "CreatedBefore",
		},
	},
}

var catalogOrderFields = map[string]filterexpr.OrderField{
	"created_at":     {Expr: attrCreatedAt},
	"updated_at":     {Expr: attrUpdatedAt},
	"name":           {Expr: attrName},
	"favorite_count": {Expr: attrFavoriteCount},
	"copy_count":     {Expr: attrCopyCount},
	"id":             {Expr: attrID},
}

var listDictionariesSchema = filterexpr.ResourceSchema{
	Filter: catalogFilterFields,
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: true,
		FallbackKey:        "id",
		FallbackDesc:       false,
		Fields:             catalogOrderFields,
	},
}

var listGrammarsSchema = filterexpr.ResourceSchema{
	Filter: catalogFilterFields,
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: true,
		FallbackKey:        "id",
		FallbackDesc:       false,
		Fields:             catalogOrderFields,
	},
}

var listRoadmapsSchema = filterexpr.ResourceSchema{
	Filter: lo.Assign(catalogFilterFields, map[string]filterexpr.FilterField{
		"level": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "Level",
				filterexpr.OpIN: "Levels",
			},
		},
	}),
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: true,
		FallbackKey:        "id",
		FallbackDesc:       false,
		Fields: lo.Assign(catalogOrderFields, map[string]filterexpr.OrderField{
			"enrollment_count": {Expr: attrEnrollmentCount},
		}),
	},
}

var (
	dictionaryBinder = filterexpr.MustCompile(listDictionariesSchema)
	grammarBinder    = filterexpr.MustCompile(listGrammarsSchema)
	roadmapBinder    = filterexpr.MustCompile(listRoadmapsSchema)
)
