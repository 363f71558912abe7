package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-affiliate/internal/transport/api/middlewares"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// parseTimeQuery парсит опциональный RFC3339 параметр запроса. Пустое или
// некорректное значение трактуется как отсутствие фильтра.
func parseTimeQuery(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}

func parseUintQuery(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

func parseInt64Query(c *gin.Context, name string) int64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// paginationOffset превращает номер страницы (с единицы) и лимит в смещение.
func paginationOffset(page, limit uint) uint {
	if page <= 1 {
		return 0
	}
	return (page - 1) * limit
}
