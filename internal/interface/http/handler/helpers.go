package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kohyli/bookstore/pkg/errors"
)

// parseUintParam 解析路径参数为uint
// 非数字/负数一律视为参数错误(400),不交给存储层报404
func parseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "invalid "+name+" parameter")
	}
	return uint(id), nil
}

// parseIntQuery 解析查询参数为int,缺省时返回def
func parseIntQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "invalid "+name+" parameter")
	}
	return v, nil
}
