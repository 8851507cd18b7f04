package home

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"explorerCache/internal/domain"
	"explorerCache/internal/ports"
)

// DefaultFailuresLimit — сколько записей истории отдаётся без ?limit.
const DefaultFailuresLimit = 50

// Controller — маршруты кэша главной страницы: снимок, отдельный слот, статус, история сбоев.
type Controller struct {
	cache ports.IHomeCache
	uc    ports.IRefreshUseCase
	log   *slog.Logger
}

// New создаёт контроллер кэша.
func New(cache ports.IHomeCache, uc ports.IRefreshUseCase, log *slog.Logger) *Controller {
	return &Controller{cache: cache, uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/cache")

	api.GET("", c.snapshot)
	api.GET("/slots/:slot", c.slot)
	api.GET("/status", c.status)
	api.GET("/failures", c.failures)
}

// @Summary Снимок данных главной страницы
// @Description Все слоты разом. Ненаполненный слот — null. Всегда 200.
// @Tags cache
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /api/v1/cache [get]
func (c *Controller) snapshot(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.cache.Read(ctx.Request.Context()))
}

// @Summary Один слот
// @Tags cache
// @Produce json
// @Param slot path string true "home | homeLists"
// @Success 200 {object} object
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/cache/slots/{slot} [get]
func (c *Controller) slot(ctx *gin.Context) {
	name, err := domain.ParseSlot(ctx.Param("slot"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	value, err := c.cache.Slot(ctx.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSlot) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.log.Error("read slot failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if value == nil {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte("null"))
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", value)
}

// @Summary Состояние кэша
// @Tags cache
// @Produce json
// @Success 200 {object} domain.CacheStatus
// @Router /api/v1/cache/status [get]
func (c *Controller) status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.cache.Status())
}

// @Summary История сбоев апстрима
// @Tags cache
// @Produce json
// @Param limit query int false "1..500, по умолчанию 50"
// @Success 200 {object} FailuresResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "история отключена"
// @Router /api/v1/cache/failures [get]
func (c *Controller) failures(ctx *gin.Context) {
	q := FailuresQuery{Limit: DefaultFailuresLimit}
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit: " + err.Error()})
		return
	}

	list, err := c.uc.Failures(ctx.Request.Context(), q.Limit)
	switch {
	case errors.Is(err, domain.ErrHistoryDisabled):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, domain.ErrInvalidLimit):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		c.log.Error("failures failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, FailuresResponse{Items: toFailureItems(list)})
}
