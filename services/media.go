package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/shared"
	log "github.com/sirupsen/logrus"
)

const maxDogPhotoSize = 5 * 1024 * 1024

// MediaService handles dog photo uploads into object storage.
type MediaService struct {
	context.DefaultService

	minioSvc *MinIOService
	userSvc  *UserService

	baseURL string
}

const MEDIA_SVC = "media_svc"

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	svc.baseURL = os.Getenv("BASE_URL")
	if svc.baseURL == "" {
		svc.baseURL = "http://localhost:8000"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	return nil
}

// UploadDogPhoto stores the image and points the user's dog profile at it.
func (svc *MediaService) UploadDogPhoto(userID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !isValidImageFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid image file format. Supported: JPG, PNG, WEBP")
	}

	if file.Size > maxDogPhotoSize {
		return nil, shared.NewBadRequestError(nil, "Image file too large. Maximum size: 5MB")
	}

	id, _ := uuid.NewV7()
	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectName := fmt.Sprintf("dogs/%s/%s%s", userID, id.String(), ext)

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewBadRequestError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	uploadInfo, err := svc.minioSvc.UploadFile(objectName, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, shared.NewServiceUnavailableError(err, "Failed to upload file to storage")
	}

	fileURL, err := svc.minioSvc.GetFileURL(objectName, 24*time.Hour)
	if err != nil {
		log.WithError(err).Warn("Failed to generate presigned URL")
		fileURL = fmt.Sprintf("%s/%s/%s", svc.baseURL, svc.minioSvc.GetBucketName(), objectName)
	}

	if _, err := svc.userSvc.SetDogPhoto(userID, fileURL); err != nil {
		// Orphaned uploads are removed so storage stays consistent with
		// the profile row.
		if delErr := svc.minioSvc.DeleteFile(objectName); delErr != nil {
			log.WithError(delErr).WithField("object", objectName).Warn("Failed to clean up orphaned upload")
		}
		return nil, err
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"object":  uploadInfo.Key,
	}).Info("Dog photo uploaded")

	return &dto.MediaUploadResponse{
		URL:        fileURL,
		ObjectName: objectName,
		Size:       file.Size,
	}, nil
}

func isValidImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	validExts := []string{".jpg", ".jpeg", ".png", ".webp"}

	for _, validExt := range validExts {
		if ext == validExt {
			return true
		}
	}
	return false
}
