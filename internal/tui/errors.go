// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-quick-post/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongCredentials):
		return "Неверный логин или пароль"
	case errors.Is(err, service.ErrTokenIsExpired):
		return "Сессия истекла, войдите заново (ctrl+l)"
	case errors.Is(err, service.ErrRateLimited):
		return "Слишком много запросов, попробуйте позже"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Требуется вход"
	case errors.Is(err, service.ErrInvalidResponse):
		return "Сервер вернул некорректный ответ"
	case errors.Is(err, service.ErrInvalidInput):
		return "Логин и пароль обязательны"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") ||
		strings.Contains(s, "client.timeout exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
