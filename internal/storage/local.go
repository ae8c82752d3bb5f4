package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// LocalStore keeps documents in a directory and serves them from baseURL.
// Meant for development and tests.
type LocalStore struct {
	basePath string
	baseURL  string
	policy   OverwritePolicy
	logger   *zap.Logger
}

func NewLocalStore(basePath, baseURL string, policy OverwritePolicy, logger ...*zap.Logger) (*LocalStore, error) {
	l := zap.L().Named("storage.local")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.local")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStore{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		policy:   policy,
		logger:   l,
	}, nil
}

func (s *LocalStore) Upload(ctx context.Context, content io.Reader, sizeHint int64, name string) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if s.policy == RejectExisting {
		flags = os.O_CREATE | os.O_WRONLY | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", ErrObjectExists
		}
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %v", ErrContainerNotFound, err)
		}
		return "", err
	}
	defer f.Close()

	written, err := io.Copy(f, readerWithContext(ctx, content))
	if err != nil {
		s.logger.Error("local upload failed", zap.String("name", name), zap.Error(err))
		return "", err
	}
	if sizeHint >= 0 && written != sizeHint {
		s.logger.Warn("local upload size mismatch",
			zap.String("name", name),
			zap.Int64("size_hint", sizeHint),
			zap.Int64("written", written),
		)
	}

	return s.baseURL + "/" + url.PathEscape(name), nil
}

func (s *LocalStore) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.Size(ctx, name)
	if errors.Is(err, ErrObjectNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *LocalStore) Size(_ context.Context, name string) (int64, error) {
	path, err := s.resolve(name)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, ErrObjectNotFound
		}
		return 0, err
	}
	if info.IsDir() {
		return 0, ErrObjectNotFound
	}
	return info.Size(), nil
}

// resolve keeps every object directly inside basePath.
func (s *LocalStore) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	return filepath.Join(s.basePath, name), nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
