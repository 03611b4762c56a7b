package task

type TaskOption func(*Task)

// New собирает задачу из обязательных полей, необязательные задаются опциями.
// Статус по умолчанию - pending.
func New(id, name string, intervalDays, flexibilityDays, durationMinutes int, nextDueDate string, options ...TaskOption) Task {
	t := Task{
		ID:              id,
		Name:            name,
		IntervalDays:    intervalDays,
		FlexibilityDays: flexibilityDays,
		DurationMinutes: durationMinutes,
		NextDueDate:     nextDueDate,
		Status:          StatusPending,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&t)
	}
	return t
}

func WithDescription(description string) TaskOption {
	if description == "" {
		return nil
	}
	return func(task *Task) {
		task.Description = &description
	}
}

func WithPreferredDayOfWeek(day int) TaskOption {
	return func(task *Task) {
		task.PreferredDayOfWeek = &day
	}
}

func WithLastCompletedDate(date string) TaskOption {
	if date == "" {
		return nil
	}
	return func(task *Task) {
		task.LastCompletedDate = &date
	}
}

func WithScheduledEventID(eventID string) TaskOption {
	if eventID == "" {
		return nil
	}
	return func(task *Task) {
		task.ScheduledEventID = &eventID
	}
}

func WithStatus(status Status) TaskOption {
	if status == "" {
		return nil
	}
	return func(task *Task) {
		task.Status = status
	}
}

func WithSnoozeCount(count int) TaskOption {
	return func(task *Task) {
		task.SnoozeCount = count
	}
}

func WithTimestamps(createdAt, updatedAt string) TaskOption {
	return func(task *Task) {
		task.CreatedAt = createdAt
		task.UpdatedAt = updatedAt
	}
}
