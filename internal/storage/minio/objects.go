package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pribylovaa/foundation-portal/internal/storage"
)

// PublicURL возвращает адрес объекта для браузера.
//
// Правила:
//   - пустой path — storage.ErrInvalidArgument;
//   - path уже абсолютный (http/https) — возвращается как есть;
//   - Presign — presigned GET с TTL из конфига;
//   - PublicBaseURL задан — "<base>/<bucket>/<path>";
//   - иначе — "<endpoint>/<bucket>/<path>".
func (o *Objects) PublicURL(ctx context.Context, bucket, path string) (string, error) {
	const op = "storage.minio.PublicURL"

	key := strings.TrimLeft(strings.TrimSpace(path), "/")
	if key == "" || bucket == "" {
		return "", fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if isAbsolute(key) {
		return key, nil
	}

	if o.cfg.Presign {
		u, err := o.client.PresignedGetObject(ctx, bucket, key, o.cfg.PresignTTL, url.Values{})
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}

		return u.String(), nil
	}

	base := o.cfg.PublicBaseURL
	if base == "" {
		base = o.client.EndpointURL().String()
	}

	return joinPublicURL(base, bucket, key), nil
}

func joinPublicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Trim(bucket, "/") + "/" + key
}

func isAbsolute(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}
