package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"alfredoptarigan/career-advisor/internal/models"
)

// ErrFileTooLarge is returned for uploads above the configured limit.
var ErrFileTooLarge = errors.New("file too large")

// UploadService reads multipart uploads into memory. Nothing is written to disk.
type UploadService interface {
	ReadUpload(file *multipart.FileHeader) (*models.DocumentInput, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

func (s *uploadService) ReadUpload(file *multipart.FileHeader) (*models.DocumentInput, error) {
	if file == nil {
		return nil, ErrMissingInput
	}

	if file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, file.Size, s.maxFileSize)
	}

	// Open source file
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	return &models.DocumentInput{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
