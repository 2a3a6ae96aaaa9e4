package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/kohyli/bookstore/internal/application/book"
	"github.com/kohyli/bookstore/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase   *appbook.ListBooksUseCase
	getBookUseCase     *appbook.GetBookUseCase
	bestsellersUseCase *appbook.MonthlyBestsellersUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	bestsellersUseCase *appbook.MonthlyBestsellersUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:   listBooksUseCase,
		getBookUseCase:     getBookUseCase,
		bestsellersUseCase: bestsellersUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  查询全部图书(含作者信息)
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]book.BookResponse}
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	result, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  按ID查询单本图书(含作者信息)
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=book.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// MonthlyBestsellers 月度畅销榜
// @Summary      月度畅销榜
// @Description  按销量统计指定月份(默认当前UTC月份)的畅销图书;已取消订单不计入
// @Tags         图书
// @Produce      json
// @Param        year  query int false "年份(缺省为当前UTC年)"
// @Param        month query int false "月份1-12(缺省为当前UTC月)"
// @Param        limit query int false "榜单长度(默认10,0返回空榜单)"
// @Success      200 {object} response.Response{data=[]book.BestsellerEntry}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /books/bestsellers/monthly [get]
func (h *BookHandler) MonthlyBestsellers(c *gin.Context) {
	year, err := parseIntQuery(c, "year", 0)
	if err != nil {
		response.Error(c, err)
		return
	}
	month, err := parseIntQuery(c, "month", 0)
	if err != nil {
		response.Error(c, err)
		return
	}
	limit, err := parseIntQuery(c, "limit", 10)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.bestsellersUseCase.Execute(c.Request.Context(), appbook.BestsellersRequest{
		Year:  year,
		Month: month,
		Limit: limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
