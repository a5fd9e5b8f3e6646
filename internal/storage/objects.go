package storage

import "context"

// Objects — разрешение пути объекта в адрес, доступный браузеру.
type Objects interface {
	// PublicURL возвращает адрес объекта path в бакете bucket.
	// Пустой path — ErrInvalidArgument.
	PublicURL(ctx context.Context, bucket, path string) (string, error)
}
