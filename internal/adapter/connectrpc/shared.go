package connectrpc

import (
	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/internal/repository"
)

const (
	_defaultPageSize = 20
	_maxPageSize     = 10000
)

func convertPagination(p *lexiroadv1.PaginationRequest) repository.Pagination {
	pageNo := p.GetPageNo()
	if pageNo <= 0 {
		pageNo = 1
	}
	pageSize := p.GetPageSize()
	if pageSize <= 0 {
		pageSize = _defaultPageSize
	}
	if pageSize > _maxPageSize {
		pageSize = _maxPageSize
	}

	return repository.Pagination{PageNo: pageNo, PageSize: pageSize}
}

func convertFilterOrder(req *lexiroadv1.ListRequest) repository.FilterOrder {
	return repository.FilterOrder{Filter: req.Filter, OrderBy: req.OrderBy}
}

func empty() *lexiroadv1.Empty {
	return &lexiroadv1.Empty{}
}
