package handlers

import (
	"net/http"
	"routineTracker/internal/handlers/dto"
	"routineTracker/internal/logger"
	"routineTracker/internal/theme"

	"go.uber.org/zap"
)

// ThemeHandler отдаёт палитру, выбранную по конфигу или по ?preference=
type ThemeHandler struct {
	preference theme.Preference
	systemDark bool
}

func NewThemeHandler(preference theme.Preference, systemDark bool) *ThemeHandler {
	return &ThemeHandler{
		preference: preference,
		systemDark: systemDark,
	}
}

func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	pref := h.preference
	if raw := r.URL.Query().Get("preference"); raw != "" {
		parsed, err := theme.ParsePreference(raw)
		if err != nil {

			logger.Warn("HTTP: Неверное значение параметра",
				zap.String("query", "preference"),
				zap.String("value", raw),
				zap.String("client_ip", r.RemoteAddr))

			responseWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		pref = parsed
	}

	selected := theme.Select(pref, h.systemDark)

	logger.Info("HTTP_OUT: Тема выбрана",
		zap.String("preference", string(pref)),
		zap.String("theme", selected.Name))

	writeJSON(w, http.StatusOK, dto.FromTheme(selected))
}
