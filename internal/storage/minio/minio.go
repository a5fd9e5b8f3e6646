// minio предоставляет реализацию storage.Objects на базе MinIO/S3.
// minio.go - конструктор клиента MinIO: нормализует endpoint,
// настраивает Secure/creds и проверяет наличие бакета партнёров.
// objects.go — разрешение пути объекта в публичный или presigned адрес.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/foundation-portal/internal/config"
	"github.com/pribylovaa/foundation-portal/internal/storage"
)

// Objects — адаптер MinIO для выдачи адресов объектов.
type Objects struct {
	cfg    config.S3Config
	client *mclient.Client
}

// New создает клиент MinIO и выполняет fail-fast-проверку бакета партнёров.
func New(ctx context.Context, cfg config.S3Config) (*Objects, error) {
	const op = "storage.minio.New"

	o, err := newObjects(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := o.client.BucketExists(ctx, cfg.PartnersBucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.PartnersBucket)
	}

	return o, nil
}

// newObjects собирает клиент без сетевых вызовов.
// Endpoint может быть задан со схемой (http/https) или без неё ("minio:9000").
func newObjects(cfg config.S3Config) (*Objects, error) {
	endpoint, secure := splitEndpoint(cfg.Endpoint)

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.RootUser, cfg.RootPassword, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &Objects{cfg: cfg, client: client}, nil
}

// splitEndpoint отделяет схему http/https от host:port.
// "minio:9000" url.Parse читает как схему "minio", поэтому учитываются только http и https.
func splitEndpoint(raw string) (host string, secure bool) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return strings.TrimRight(raw, "/"), false
	}
	return u.Host, u.Scheme == "https"
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Objects = (*Objects)(nil)
