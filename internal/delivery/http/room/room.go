package http_room

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/am1t0/anonymous-meet-vote/internal/delivery/http/common"
	ws_room "github.com/am1t0/anonymous-meet-vote/internal/delivery/ws/room"
	"github.com/am1t0/anonymous-meet-vote/internal/model"
	usecase_room "github.com/am1t0/anonymous-meet-vote/internal/usecase/room"
)

type Controller struct {
	usecase *usecase_room.Usecase
	hub     *ws_room.Hub
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_room.Usecase, hub *ws_room.Hub, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		hub:     hub,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.POST("", c.create)
		rooms.GET("/:room_code/stats", c.stats)
		rooms.DELETE("/:room_code", c.free)
	}
}

// CreateResponseDTO DTO для ответа создания комнаты
type CreateResponseDTO struct {
	RoomCode string `json:"room_code"`
}

// Create создает новую комнату
// @Summary Создание комнаты
// @Description Создает комнату для сбора оценок и выдает токен ведущего
// @Tags Rooms
// @Produce json
// @Success 201 {object} CreateResponseDTO "Комната успешно создана"
// @Header 201 {string} X-User-Token "Токен ведущего комнаты"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Failure 503 {object} http_common.ErrorResponse "Нет свободных кодов"
// @Router /rooms [post]
func (c *Controller) create(ctx *gin.Context) {
	creator := model.ConnID(uuid.NewString())

	code, err := c.usecase.Create(ctx, creator)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrRoomsUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "unavailable",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Header("X-User-Token", string(creator))
	ctx.JSON(http.StatusCreated, CreateResponseDTO{
		RoomCode: string(code),
	})
}

// StatsResponseDTO DTO со сводкой оценок комнаты
type StatsResponseDTO struct {
	RoomCode     string  `json:"room_code"`
	Count        int     `json:"count"`
	Avg          float64 `json:"avg"`
	Distribution [5]int  `json:"distribution"`
}

// Stats возвращает текущую сводку оценок
// @Summary Сводка оценок комнаты
// @Tags Rooms
// @Produce json
// @Param room_code path string true "Код комнаты"
// @Success 200 {object} StatsResponseDTO "Сводка оценок"
// @Failure 404 {object} http_common.ErrorResponse "Комната не найдена"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /rooms/{room_code}/stats [get]
func (c *Controller) stats(ctx *gin.Context) {
	code, err := c.usecase.Lookup(ctx, ctx.Param("room_code"))
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		c.logger.Error("failed to look up room", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	s, err := c.usecase.Stats(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		c.logger.Error("failed to get stats", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, StatsResponseDTO{
		RoomCode:     string(code),
		Count:        s.Count,
		Avg:          s.Avg,
		Distribution: s.Distribution,
	})
}

// Free завершает комнату
// @Summary Завершение комнаты
// @Description Завершает комнату по коду, доступно только ведущему
// @Tags Rooms
// @Param room_code path string true "Код комнаты"
// @Success 204 "Комната успешно завершена"
// @Failure 401 {object} http_common.ErrorResponse "Не авторизован"
// @Failure 404 {object} http_common.ErrorResponse "Комната не найдена"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Security UserToken
// @Router /rooms/{room_code} [delete]
func (c *Controller) free(ctx *gin.Context) {
	userToken := ctx.GetHeader("X-User-Token")
	if userToken == "" {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "X-User-Token not found",
		})
		return
	}

	code, err := c.usecase.Lookup(ctx, ctx.Param("room_code"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})
		return
	}

	isCreator, err := c.usecase.IsCreator(ctx, code, model.ConnID(userToken))
	if err != nil {
		c.logger.Error("failed to free room", slog.String("error", err.Error()))
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})
		return
	}
	if !isCreator {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "unauthorized",
		})
		return
	}

	// Subscribers hear the terminal event before the code stops
	// resolving, same as the socket path.
	c.hub.AnnounceRoomEnded(code)

	if err := c.usecase.ForceFree(ctx, code); err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		c.logger.Error("failed to free room", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
