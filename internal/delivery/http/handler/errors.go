package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/gdugdh24/godate-backend/internal/infrastructure/chadgpt"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// OkResponse represents a plain success acknowledgement
type OkResponse struct {
	OK bool `json:"ok"`
}

func ok() OkResponse {
	return OkResponse{OK: true}
}

// respondError maps domain sentinels to HTTP statuses with the
// user-facing Russian messages the API contract uses.
func respondError(c *gin.Context, err error) {
	var providerErr *chadgpt.ProviderError

	switch {
	case errors.As(err, &providerErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: providerErr.Message})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Некорректные данные"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Неверные учетные данные"})
	case errors.Is(err, domain.ErrSelfRequest):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Нельзя отправить запрос самому себе"})
	case errors.Is(err, domain.ErrOwnRouteLike):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Нельзя лайкать свой маршрут"})
	case errors.Is(err, domain.ErrNoSoulmate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "У вас нет второй половинки"})
	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Невалидный токен"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Недостаточно прав"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Пользователь не найден"})
	case errors.Is(err, domain.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Заявка не найдена"})
	case errors.Is(err, domain.ErrFriendshipNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Дружба не найдена"})
	case errors.Is(err, domain.ErrRouteNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Маршрут не найден"})
	case errors.Is(err, domain.ErrDailyNotFound), errors.Is(err, domain.ErrDailyTaskNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Дейлик не найден"})
	case errors.Is(err, domain.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Email или ник уже заняты"})
	case errors.Is(err, domain.ErrRequestExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Запрос уже существует"})
	case errors.Is(err, domain.ErrSoulmateTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "У одного из пользователей уже есть половинка"})
	case errors.Is(err, domain.ErrAlreadyLiked):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Уже лайкнуто"})
	case errors.Is(err, domain.ErrDailyCompleted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Дейлик уже выполнен сегодня"})
	case errors.Is(err, domain.ErrAIUnavailable):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "AI сервис недоступен"})
	default:
		logrus.WithError(err).Error("unhandled request error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Внутренняя ошибка сервера"})
	}
}

// currentUser returns the authenticated user placed by the auth middleware.
func currentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get("current_user")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Не авторизован"})
		return nil, false
	}
	user, okCast := v.(*domain.User)
	if !okCast {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Не авторизован"})
		return nil, false
	}
	return user, true
}
