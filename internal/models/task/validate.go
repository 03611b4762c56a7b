package task

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout - формат дат ISO 8601 без времени
const DateLayout = "2006-01-02"

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Reason))
	}
	return "неверные поля задачи: " + strings.Join(parts, "; ")
}

// Validate проверяет ограничения, выведенные из смысла полей.
// Хранилище эту проверку не вызывает, это дело внешнего слоя.
func (t Task) Validate() error {
	var errs ValidationErrors
	add := func(field, reason string) {
		errs = append(errs, FieldError{Field: field, Reason: reason})
	}

	if strings.TrimSpace(t.Name) == "" {
		add("name", "не может быть пустым")
	}
	if t.IntervalDays < 1 {
		add("intervalDays", "должно быть не меньше 1")
	}
	if t.FlexibilityDays < 0 {
		add("flexibilityDays", "не может быть отрицательным")
	}
	if t.PreferredDayOfWeek != nil && (*t.PreferredDayOfWeek < 0 || *t.PreferredDayOfWeek > 6) {
		add("preferredDayOfWeek", "должно быть в диапазоне 0..6")
	}
	if t.DurationMinutes < 1 {
		add("durationMinutes", "должно быть не меньше 1")
	}
	if t.LastCompletedDate != nil && !isDate(*t.LastCompletedDate) {
		add("lastCompletedDate", "ожидается дата YYYY-MM-DD")
	}
	if t.NextDueDate == "" {
		add("nextDueDate", "обязательное поле")
	} else if !isDate(t.NextDueDate) {
		add("nextDueDate", "ожидается дата YYYY-MM-DD")
	}
	if !t.Status.Valid() {
		add("status", fmt.Sprintf("неизвестное значение %q", t.Status))
	}
	if t.SnoozeCount < 0 {
		add("snoozeCount", "не может быть отрицательным")
	}
	if t.CreatedAt != "" && !isTimestamp(t.CreatedAt) {
		add("createdAt", "ожидается время RFC 3339")
	}
	if t.UpdatedAt != "" && !isTimestamp(t.UpdatedAt) {
		add("updatedAt", "ожидается время RFC 3339")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func isTimestamp(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
