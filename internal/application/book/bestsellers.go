package book

import (
	"context"
	"time"

	"github.com/kohyli/bookstore/internal/domain/book"
	"github.com/kohyli/bookstore/internal/domain/order"
	apperrors "github.com/kohyli/bookstore/pkg/errors"
)

// MonthlyBestsellersUseCase 月度畅销榜用例
// 设计说明:
// 1. 聚合在存储层完成(GROUP BY + SUM),用例负责时间窗口计算
//    与回表补全图书信息
// 2. 只统计未取消订单(Created与Completed);订单何时被取消
//    不影响排除规则
type MonthlyBestsellersUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
}

// NewMonthlyBestsellersUseCase 创建畅销榜用例
func NewMonthlyBestsellersUseCase(orderRepo order.Repository, bookRepo book.Repository) *MonthlyBestsellersUseCase {
	return &MonthlyBestsellersUseCase{orderRepo: orderRepo, bookRepo: bookRepo}
}

// BestsellersRequest 畅销榜请求DTO
// Year/Month任一为0时,整体回落到当前UTC月份
type BestsellersRequest struct {
	Year  int
	Month int
	Limit int
}

// BestsellerEntry 榜单条目
type BestsellerEntry struct {
	Book      BookResponse `json:"book"`
	UnitsSold int          `json:"units_sold"`
}

// Execute 执行畅销榜查询
// 流程:
// 1. 计算半开统计窗口[月初, 次月初),AddDate自动处理12月翻年
// 2. 存储层聚合:销量降序,同销量按图书ID升序,截断limit条
// 3. 回表查询图书详情(带作者);已下架图书静默丢弃,排名顺序保持
func (uc *MonthlyBestsellersUseCase) Execute(ctx context.Context, req BestsellersRequest) ([]BestsellerEntry, error) {
	// limit<=0约定返回空榜单而非错误
	if req.Limit <= 0 {
		return []BestsellerEntry{}, nil
	}

	year, month := req.Year, req.Month
	if year == 0 || month == 0 {
		now := time.Now().UTC()
		year, month = now.Year(), int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "month must be between 1 and 12")
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	sales, err := uc.orderRepo.SalesByBook(ctx, from, to, order.CountedStatuses(), req.Limit)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return []BestsellerEntry{}, nil
	}

	ids := make([]uint, len(sales))
	for i, s := range sales {
		ids[i] = s.BookID
	}
	books, err := uc.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]BestsellerEntry, 0, len(sales))
	for _, s := range sales {
		b, ok := books[s.BookID]
		if !ok {
			// 聚合里存在但图书已删除,静默丢弃
			continue
		}
		entries = append(entries, BestsellerEntry{
			Book:      ToBookResponse(b),
			UnitsSold: s.UnitsSold,
		})
	}
	return entries, nil
}
