package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"staybook/internal/domains/hotel/model"
	"staybook/internal/domains/hotel/model/dto"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxConcurrentUploads = 4
	defaultMaxImageSizeMB       = 5
	bytesPerMegabyte            = 1 << 20
)

func (s *serviceImpl) checkImageSizes(req dto.CreateHotelRequest) error {
	maxMB := s.cfg.External.S3.MaxImageSizeMegabytes
	if maxMB <= 0 {
		maxMB = defaultMaxImageSizeMB
	}

	for _, header := range req.Images() {
		if header.Size > int64(maxMB)*bytesPerMegabyte {
			return failure.BadRequestFromString(fmt.Sprintf("Image %s exceeds the %d MB limit", header.Filename, maxMB)) // nolint:wrapcheck
		}
	}

	return nil
}

// uploadImages stores the files concurrently and returns their URLs in input order. When any
// upload fails, the ones that succeeded are removed again before the error is returned.
func (s *serviceImpl) uploadImages(ctx context.Context, headers []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, len(headers))
	if len(headers) == 0 {
		return urls, nil
	}

	limit := s.cfg.External.S3.MaxConcurrentUploads
	if limit <= 0 {
		limit = defaultMaxConcurrentUploads
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for i, header := range headers {
		group.Go(func() error {
			url, err := s.uploadImage(groupCtx, header)
			if err != nil {
				return err
			}

			urls[i] = url

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		uploaded := make([]string, 0, len(urls))

		for _, url := range urls {
			if url != constant.Empty {
				uploaded = append(uploaded, url)
			}
		}

		s.deleteImages(context.WithoutCancel(ctx), uploaded)

		return nil, err
	}

	return urls, nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to open %s: %w", header.Filename, err)
	}
	defer file.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, file, header, name)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload %s: %w", header.Filename, err)
	}

	return url, nil
}

// deleteImages is best effort. Failures are logged and leave orphaned objects behind.
func (s *serviceImpl) deleteImages(ctx context.Context, urls []string) {
	bucket := s.cfg.External.S3.BucketName

	for _, url := range urls {
		objectName := s.s3.GetObjectNameFromURL(bucket, url)
		if objectName == constant.Empty {
			log.Warn().Str("url", url).Msg("failed to extract object name from URL")

			continue
		}

		if err := s.s3.DeleteFile(ctx, bucket, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete orphaned hotel image")
		}
	}
}
