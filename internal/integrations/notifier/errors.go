package notifier

import "errors"

var (
	// ErrDeliveryFailed возвращается, когда сервис уведомлений не принял запрос
	// Вызывающий код логирует эту ошибку и не прерывает основную операцию
	ErrDeliveryFailed = errors.New("notifier: delivery failed")

	// ErrInternal возвращается при ошибках построения или выполнения запроса
	ErrInternal = errors.New("notifier: internal error")
)
