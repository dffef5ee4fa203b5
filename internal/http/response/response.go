// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Пакет упрощает возврат
// успешных ответов, ошибок и сообщений валидации в едином формате,
// который потребляет фронтенд с графиками.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Success — признак успеха запроса.
// Поля Data/Metadata/Stats — данные ответа (опционально, при успехе).
// Поля Error/Details — текст ошибки и подробности (опционально, при неуспехе).
type Response struct {
	Success  bool   `json:"success"`
	Data     any    `json:"data,omitempty"`
	Metadata any    `json:"metadata,omitempty"`
	Stats    any    `json:"stats,omitempty"`
	Error    string `json:"error,omitempty"`
	Details  string `json:"details,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"failed to fetch attendance data"`
	Details string `json:"details,omitempty" example:"unexpected upstream status: 502 Bad Gateway"`
}

// OKWithData возвращает успешный Response с переданными данными.
func OKWithData(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// OKWithList возвращает успешный Response с данными и метаданными пагинации.
func OKWithList(data, metadata any) Response {
	return Response{
		Success:  true,
		Data:     data,
		Metadata: metadata,
	}
}

// OKWithStats возвращает успешный Response со статистикой.
func OKWithStats(stats any) Response {
	return Response{
		Success: true,
		Stats:   stats,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Success: false,
		Error:   msg,
	}
}

// ErrorWithDetails возвращает Response с ошибкой, сообщением и подробностями.
func ErrorWithDetails(msg, details string) Response {
	return Response{
		Success: false,
		Error:   msg,
		Details: details,
	}
}

// ValidationError формирует Response с ошибкой на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		case "uuid":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only uuid", err.Field()))
		case "datetime":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only date in format %s", err.Field(), err.Param()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too long", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Success: false,
		Error:   strings.Join(errsMsgs, ", "),
	}
}
