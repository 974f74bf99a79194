package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/verdantis/herbal-life/backend/config"
)

// ImageService stores uploaded plant photos in S3 and hands back public URLs
// for the catalog to reference.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadPlantImage uploads image bytes for a plant and returns the public
// URL. The object key is namespaced by plant id so re-uploads never collide.
func (s *ImageService) UploadPlantImage(ctx context.Context, plantID uuid.UUID, imageData []byte) (string, error) {
	contentType := http.DetectContentType(imageData)
	switch contentType {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return "", newValidationError("image", fmt.Sprintf("unsupported content type %s", contentType))
	}

	fileName := fmt.Sprintf("plant-images/%s/%s", plantID, uuid.New().String())
	return s.uploadToS3(ctx, imageData, fileName, contentType)
}

func (s *ImageService) uploadToS3(ctx context.Context, imageData []byte, fileName, contentType string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[ImageService] Successfully uploaded image to S3: %s", publicURL)

	return publicURL, nil
}
