package minio

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/foundation-portal/internal/config"
	"github.com/pribylovaa/foundation-portal/internal/storage"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Unit-тесты PublicURL не ходят в сеть: клиент MinIO собирается без запросов,
// а presign с явным регионом не запрашивает location бакета.

func unitObjects(t *testing.T, mutate func(c *config.S3Config)) *Objects {
	t.Helper()

	cfg := config.S3Config{
		Endpoint:       "http://minio.local:9000",
		RootUser:       "root",
		RootPassword:   "rootpass",
		Region:         "us-east-1",
		PartnersBucket: "partners",
		PresignTTL:     time.Minute,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	o, err := newObjects(cfg)
	require.NoError(t, err)
	return o
}

func TestPublicURL_EndpointFallback(t *testing.T) {
	t.Parallel()

	o := unitObjects(t, nil)
	got, err := o.PublicURL(context.Background(), "partners", "logos/acme.png")
	require.NoError(t, err)
	require.Equal(t, "http://minio.local:9000/partners/logos/acme.png", got)
}

func TestPublicURL_PublicBase_TrimsSlashes(t *testing.T) {
	t.Parallel()

	o := unitObjects(t, func(c *config.S3Config) { c.PublicBaseURL = "https://cdn.fund.org/" })
	got, err := o.PublicURL(context.Background(), "partners", "/acme.png")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.fund.org/partners/acme.png", got)
}

func TestPublicURL_AbsolutePassThrough(t *testing.T) {
	t.Parallel()

	o := unitObjects(t, nil)
	got, err := o.PublicURL(context.Background(), "partners", "https://other.org/logo.svg")
	require.NoError(t, err)
	require.Equal(t, "https://other.org/logo.svg", got)
}

func TestPublicURL_EmptyPath_InvalidArgument(t *testing.T) {
	t.Parallel()

	o := unitObjects(t, nil)
	_, err := o.PublicURL(context.Background(), "partners", "  ")
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = o.PublicURL(context.Background(), "", "a.png")
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestPublicURL_Presigned(t *testing.T) {
	t.Parallel()

	o := unitObjects(t, func(c *config.S3Config) { c.Presign = true })
	got, err := o.PublicURL(context.Background(), "partners", "acme.png")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "http://minio.local:9000/partners/acme.png?"), got)
	require.Contains(t, got, "X-Amz-Signature=")
	require.Contains(t, got, "X-Amz-Expires=60")
}

func TestNewObjects_SchemeSelectsSecure(t *testing.T) {
	t.Parallel()

	o := unitObjects(t, func(c *config.S3Config) { c.Endpoint = "https://s3.fund.org" })
	require.Equal(t, "https", o.client.EndpointURL().Scheme)

	o = unitObjects(t, func(c *config.S3Config) { c.Endpoint = "minio:9000" })
	require.Equal(t, "http", o.client.EndpointURL().Scheme)
	require.Equal(t, "minio:9000", o.client.EndpointURL().Host)
}

func TestSplitEndpoint(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		in     string
		host   string
		secure bool
	}{
		{"minio:9000", "minio:9000", false},
		{"localhost:9000", "localhost:9000", false},
		{"s3.amazonaws.com", "s3.amazonaws.com", false},
		{"http://minio:9000", "minio:9000", false},
		{"https://s3.fund.org/", "s3.fund.org", true},
		{" minio:9000/ ", "minio:9000", false},
	}

	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			host, secure := splitEndpoint(tc.in)
			require.Equal(t, tc.host, host)
			require.Equal(t, tc.secure, secure)
		})
	}
}

func TestPublicURL_SchemelessEndpoint(t *testing.T) {
	t.Parallel()

	o := unitObjects(t, func(c *config.S3Config) { c.Endpoint = "minio:9000" })
	got, err := o.PublicURL(context.Background(), "partners", "acme.png")
	require.NoError(t, err)
	require.Equal(t, "http://minio:9000/partners/acme.png", got)
}

// Интеграционные тесты:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func startMinio(t *testing.T, createBucket bool) (config.S3Config, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		rootUser     = "root"
		rootPassword = "rootpass"
		bucket       = "partners"
	)
	req := tc.ContainerRequest{
		Image: "docker.io/minio/minio:latest",
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data"},
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds: credentials.NewStaticV4(rootUser, rootPassword, ""),
		})
		require.NoError(t, err)
		require.NoError(t, admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"}))
	}

	cfg := config.S3Config{
		Endpoint:       fmt.Sprintf("http://%s:%s", host, port.Port()),
		RootUser:       rootUser,
		RootPassword:   rootPassword,
		Region:         "us-east-1",
		PartnersBucket: bucket,
		PresignTTL:     time.Minute,
	}

	return cfg, func() { _ = c.Terminate(context.Background()) }
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	cfg, cleanup := startMinio(t, false)
	defer cleanup()

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestIntegration_New_OK_AndPublicURL(t *testing.T) {
	cfg, cleanup := startMinio(t, true)
	defer cleanup()

	o, err := New(context.Background(), cfg)
	require.NoError(t, err)

	got, err := o.PublicURL(context.Background(), cfg.PartnersBucket, "acme.png")
	require.NoError(t, err)
	require.Equal(t, cfg.Endpoint+"/partners/acme.png", got)
}
