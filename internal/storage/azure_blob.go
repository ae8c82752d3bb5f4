package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"go.uber.org/zap"
)

// AzureBlobStore keeps documents in one Azure Blob Storage container.
type AzureBlobStore struct {
	container *container.Client
	policy    OverwritePolicy
	logger    *zap.Logger
}

func NewAzureBlobStore(client *azblob.Client, containerName string, policy OverwritePolicy, logger ...*zap.Logger) *AzureBlobStore {
	l := zap.L().Named("storage.azure")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.azure")
	}
	return &AzureBlobStore{
		container: client.ServiceClient().NewContainerClient(containerName),
		policy:    policy,
		logger:    l,
	}
}

func (s *AzureBlobStore) Upload(ctx context.Context, content io.Reader, sizeHint int64, name string) (string, error) {
	blobClient := s.container.NewBlockBlobClient(name)

	opts := &blockblob.UploadStreamOptions{}
	if s.policy == RejectExisting {
		opts.AccessConditions = &blob.AccessConditions{
			ModifiedAccessConditions: &blob.ModifiedAccessConditions{
				IfNoneMatch: to.Ptr(azcore.ETagAny),
			},
		}
	}

	if _, err := blobClient.UploadStream(ctx, content, opts); err != nil {
		s.logger.Error("blob upload failed",
			zap.String("blob", name),
			zap.Int64("size_hint", sizeHint),
			zap.Error(err),
		)
		return "", mapBlobError(err)
	}

	s.logger.Info("blob uploaded",
		zap.String("blob", name),
		zap.Int64("size_hint", sizeHint),
		zap.String("policy", s.policy.String()),
	)
	return blobClient.URL(), nil
}

func (s *AzureBlobStore) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.container.NewBlobClient(name).GetProperties(ctx, nil)
	if err == nil {
		return true, nil
	}
	if bloberror.HasCode(err, bloberror.BlobNotFound) {
		return false, nil
	}
	return false, mapBlobError(err)
}

func (s *AzureBlobStore) Size(ctx context.Context, name string) (int64, error) {
	props, err := s.container.NewBlobClient(name).GetProperties(ctx, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return 0, ErrObjectNotFound
		}
		s.logger.Error("blob properties failed", zap.String("blob", name), zap.Error(err))
		return 0, mapBlobError(err)
	}
	if props.ContentLength == nil {
		return 0, nil
	}
	return *props.ContentLength, nil
}

func mapBlobError(err error) error {
	switch {
	case bloberror.HasCode(err, bloberror.ContainerNotFound):
		return fmt.Errorf("%w: %v", ErrContainerNotFound, err)
	case bloberror.HasCode(err, bloberror.BlobNotFound):
		return fmt.Errorf("%w: %v", ErrObjectNotFound, err)
	case bloberror.HasCode(err, bloberror.BlobAlreadyExists, bloberror.ConditionNotMet):
		return fmt.Errorf("%w: %v", ErrObjectExists, err)
	default:
		return err
	}
}
