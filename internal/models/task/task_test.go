package task_test

import (
	"errors"
	"routineTracker/internal/models/task"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTask() task.Task {
	return task.New("1", "Water plants", 3, 1, 5, "2024-01-01",
		task.WithTimestamps("2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z"))
}

// TestParseStatus тестирует разбор статуса
func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected task.Status
		wantErr  bool
	}{
		{name: "pending", raw: "pending", expected: task.StatusPending},
		{name: "upper case", raw: "NOTIFIED", expected: task.StatusNotified},
		{name: "spaces", raw: "  scheduled ", expected: task.StatusScheduled},
		{name: "completed", raw: "completed", expected: task.StatusCompleted},
		{name: "overdue", raw: "overdue", expected: task.StatusOverdue},
		{name: "unknown", raw: "done", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := task.ParseStatus(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, task.ErrUnknownStatus))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestStatuses(t *testing.T) {
	statuses := task.Statuses()
	assert.Equal(t, []task.Status{
		task.StatusPending,
		task.StatusNotified,
		task.StatusScheduled,
		task.StatusCompleted,
		task.StatusOverdue,
	}, statuses)

	// копия не должна влиять на пакет
	statuses[0] = "broken"
	assert.Equal(t, task.StatusPending, task.Statuses()[0])
}

// TestNew тестирует сборку задачи через опции
func TestNew(t *testing.T) {
	tk := task.New("42", "Clean gutters", 30, 7, 90, "2024-05-01",
		task.WithDescription("both sides"),
		task.WithPreferredDayOfWeek(6),
		task.WithLastCompletedDate("2024-04-01"),
		task.WithScheduledEventID("evt-1"),
		task.WithStatus(task.StatusScheduled),
		task.WithSnoozeCount(2),
		task.WithDescription(""),
	)

	assert.Equal(t, "42", tk.ID)
	assert.Equal(t, "Clean gutters", tk.Name)
	require.NotNil(t, tk.Description)
	assert.Equal(t, "both sides", *tk.Description)
	require.NotNil(t, tk.PreferredDayOfWeek)
	assert.Equal(t, 6, *tk.PreferredDayOfWeek)
	require.NotNil(t, tk.LastCompletedDate)
	assert.Equal(t, "2024-04-01", *tk.LastCompletedDate)
	require.NotNil(t, tk.ScheduledEventID)
	assert.Equal(t, "evt-1", *tk.ScheduledEventID)
	assert.Equal(t, task.StatusScheduled, tk.Status)
	assert.Equal(t, 2, tk.SnoozeCount)
}

func TestNew_DefaultStatus(t *testing.T) {
	tk := task.New("1", "x", 1, 0, 1, "2024-01-01", task.WithStatus(""))
	assert.Equal(t, task.StatusPending, tk.Status)
	assert.Nil(t, tk.Description)
}

// TestTask_Validate тестирует проверку полей
func TestTask_Validate(t *testing.T) {
	badDay := 7
	badDate := "01/02/2024"

	tests := []struct {
		name   string
		modify func(*task.Task)
		fields []string
	}{
		{name: "valid", modify: func(*task.Task) {}},
		{name: "empty name", modify: func(tk *task.Task) { tk.Name = "  " }, fields: []string{"name"}},
		{name: "zero interval", modify: func(tk *task.Task) { tk.IntervalDays = 0 }, fields: []string{"intervalDays"}},
		{name: "negative flexibility", modify: func(tk *task.Task) { tk.FlexibilityDays = -1 }, fields: []string{"flexibilityDays"}},
		{name: "day of week out of range", modify: func(tk *task.Task) { tk.PreferredDayOfWeek = &badDay }, fields: []string{"preferredDayOfWeek"}},
		{name: "zero duration", modify: func(tk *task.Task) { tk.DurationMinutes = 0 }, fields: []string{"durationMinutes"}},
		{name: "bad last completed", modify: func(tk *task.Task) { tk.LastCompletedDate = &badDate }, fields: []string{"lastCompletedDate"}},
		{name: "missing next due", modify: func(tk *task.Task) { tk.NextDueDate = "" }, fields: []string{"nextDueDate"}},
		{name: "bad next due", modify: func(tk *task.Task) { tk.NextDueDate = badDate }, fields: []string{"nextDueDate"}},
		{name: "unknown status", modify: func(tk *task.Task) { tk.Status = "done" }, fields: []string{"status"}},
		{name: "negative snooze", modify: func(tk *task.Task) { tk.SnoozeCount = -2 }, fields: []string{"snoozeCount"}},
		{name: "bad timestamps", modify: func(tk *task.Task) {
			tk.CreatedAt = "yesterday"
			tk.UpdatedAt = "2024-01-01"
		}, fields: []string{"createdAt", "updatedAt"}},
		{name: "several at once", modify: func(tk *task.Task) {
			tk.Name = ""
			tk.DurationMinutes = -5
		}, fields: []string{"name", "durationMinutes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := validTask()
			tt.modify(&tk)

			err := tk.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs task.ValidationErrors
			require.True(t, errors.As(err, &verrs))

			got := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.fields, got)
			assert.Contains(t, err.Error(), tt.fields[0])
		})
	}
}
