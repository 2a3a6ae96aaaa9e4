package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/kohyli/bookstore/internal/application/author"
	"github.com/kohyli/bookstore/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	listAuthorsUseCase     *appauthor.ListAuthorsUseCase
	getAuthorUseCase       *appauthor.GetAuthorUseCase
	listAuthorBooksUseCase *appauthor.ListAuthorBooksUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	listAuthorsUseCase *appauthor.ListAuthorsUseCase,
	getAuthorUseCase *appauthor.GetAuthorUseCase,
	listAuthorBooksUseCase *appauthor.ListAuthorBooksUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		listAuthorsUseCase:     listAuthorsUseCase,
		getAuthorUseCase:       getAuthorUseCase,
		listAuthorBooksUseCase: listAuthorBooksUseCase,
	}
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=[]author.AuthorResponse}
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	result, err := h.listAuthorsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=author.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getAuthorUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListAuthorBooks 作者的图书列表
// @Summary      作者的图书列表
// @Description  作者不存在时返回空列表(关系查询不校验作者存在性)
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=[]book.BookResponse}
// @Router       /authors/{id}/books [get]
func (h *AuthorHandler) ListAuthorBooks(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listAuthorBooksUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
