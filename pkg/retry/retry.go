package retry

import (
	"context"
	"time"
)

// Do выполняет fn до attempts раз с линейно растущей паузой между попытками.
// Повторяет только при ошибке; прерывается при отмене контекста.
// Использовать только для идемпотентных операций (чтение) - запись с
// неизвестным исходом повторять нельзя.
func Do(ctx context.Context, attempts int, backoff time.Duration, fn func() error) error {
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if attempt == attempts {
			break
		}

		select {
		case <-time.After(time.Duration(attempt) * backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}
