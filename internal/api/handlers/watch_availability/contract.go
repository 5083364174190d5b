package watch_availability

import "time"

// ChangeFeed интерфейс канала уведомлений об изменениях
type ChangeFeed interface {
	Subscribe(date time.Time, handler func()) func()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
