// Package marketplace 投资列表的视图模式, 筛选与分页状态.
//
// 筛选条件会被记录并重置页码, 但目前不作用于列表本身.
package marketplace

import (
	"errors"
	"fmt"
	"strings"
)

// PageSize 每页条数
const PageSize = 8

// ErrInvalidOption 无法识别的视图或筛选值
var ErrInvalidOption = errors.New("invalid listing option")

// ViewMode 展示方式
type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewGrid ViewMode = "grid"
)

// StatusFilter 状态筛选
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusPassed   StatusFilter = "passed"
	StatusPending  StatusFilter = "pending"
	StatusRejected StatusFilter = "rejected"
)

// VotingFilter 投票筛选
type VotingFilter string

const (
	VotingAll      VotingFilter = "all"
	VotingVoted    VotingFilter = "voted"
	VotingNotVoted VotingFilter = "not-voted"
)

// ParseViewMode 空字符串返回默认值
func ParseViewMode(s string) (ViewMode, error) {
	switch v := ViewMode(strings.ToLower(s)); v {
	case "":
		return ViewList, nil
	case ViewList, ViewGrid:
		return v, nil
	default:
		return "", fmt.Errorf("view %q: %w", s, ErrInvalidOption)
	}
}

// ParseStatusFilter 空字符串返回默认值
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch v := StatusFilter(strings.ToLower(s)); v {
	case "":
		return StatusAll, nil
	case StatusAll, StatusPassed, StatusPending, StatusRejected:
		return v, nil
	default:
		return "", fmt.Errorf("status %q: %w", s, ErrInvalidOption)
	}
}

// ParseVotingFilter 空字符串返回默认值
func ParseVotingFilter(s string) (VotingFilter, error) {
	switch v := VotingFilter(strings.ToLower(s)); v {
	case "":
		return VotingAll, nil
	case VotingAll, VotingVoted, VotingNotVoted:
		return v, nil
	default:
		return "", fmt.Errorf("voting %q: %w", s, ErrInvalidOption)
	}
}

// Listing 一份已获取列表的展示状态
type Listing[T any] struct {
	items  []T
	view   ViewMode
	status StatusFilter
	voting VotingFilter
	search string
	page   int
}

// NewListing 默认列表视图, 不筛选, 第 1 页
func NewListing[T any](items []T) *Listing[T] {
	if items == nil {
		items = []T{}
	}
	return &Listing[T]{
		items:  items,
		view:   ViewList,
		status: StatusAll,
		voting: VotingAll,
		page:   1,
	}
}

// View 当前展示方式
func (l *Listing[T]) View() ViewMode { return l.view }

// Status 当前状态筛选
func (l *Listing[T]) Status() StatusFilter { return l.status }

// Voting 当前投票筛选
func (l *Listing[T]) Voting() VotingFilter { return l.voting }

// Search 当前搜索词
func (l *Listing[T]) Search() string { return l.search }

// CurrentPage 当前页, 从 1 开始
func (l *Listing[T]) CurrentPage() int { return l.page }

// SetView 切换展示方式, 不影响页码
func (l *Listing[T]) SetView(v ViewMode) {
	l.view = v
}

// SetStatus 状态筛选变化时回到第 1 页
func (l *Listing[T]) SetStatus(s StatusFilter) {
	if s != l.status {
		l.status = s
		l.page = 1
	}
}

// SetVoting 投票筛选变化时回到第 1 页
func (l *Listing[T]) SetVoting(v VotingFilter) {
	if v != l.voting {
		l.voting = v
		l.page = 1
	}
}

// SetSearch 搜索词变化时回到第 1 页
func (l *Listing[T]) SetSearch(term string) {
	if term != l.search {
		l.search = term
		l.page = 1
	}
}

// SetPage 跳转页码, 超出范围时取边界
func (l *Listing[T]) SetPage(page int) {
	total := l.TotalPages()
	switch {
	case page < 1:
		page = 1
	case total > 0 && page > total:
		page = total
	case total == 0:
		page = 1
	}
	l.page = page
}

// Filtered 筛选后的列表; 筛选条件尚未生效, 返回全部条目
func (l *Listing[T]) Filtered() []T {
	return l.items
}

// FiltersApplied 状态/投票/搜索条件是否作用于列表, 目前恒为 false
func (l *Listing[T]) FiltersApplied() bool {
	return false
}

// TotalPages 总页数
func (l *Listing[T]) TotalPages() int {
	n := len(l.Filtered())
	return (n + PageSize - 1) / PageSize
}

// Page 一页数据
type Page[T any] struct {
	Items      []T    `json:"items"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Total      int    `json:"total"`
	Numbers    []int  `json:"numbers"` // 0 表示省略号
	Summary    string `json:"summary"`
}

// CurrentItems 当前页的条目
func (l *Listing[T]) CurrentItems() Page[T] {
	filtered := l.Filtered()
	total := len(filtered)
	start := (l.page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	totalPages := l.TotalPages()
	return Page[T]{
		Items:      filtered[start:end],
		Page:       l.page,
		TotalPages: totalPages,
		Total:      total,
		Numbers:    PageNumbers(l.page, totalPages),
		Summary:    fmt.Sprintf("Showing %d to %d of %d items", start+1, end, total),
	}
}

// PageNumbers 分页按钮, 最多 5 个可见页码, 0 表示省略号; 只有一页时不显示分页
func PageNumbers(current, totalPages int) []int {
	const maxVisible = 5
	if totalPages <= 1 {
		return []int{}
	}

	pages := make([]int, 0, maxVisible+2)
	switch {
	case totalPages <= maxVisible:
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
	case current <= 3:
		pages = append(pages, 1, 2, 3, 4, 0, totalPages)
	case current >= totalPages-2:
		pages = append(pages, 1, 0)
		for i := totalPages - 3; i <= totalPages; i++ {
			pages = append(pages, i)
		}
	default:
		pages = append(pages, 1, 0, current-1, current, current+1, 0, totalPages)
	}
	return pages
}
