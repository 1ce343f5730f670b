package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"anantha_back_end/internal/database"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// UploadProductImage pousse une image produit vers MinIO et retourne son URL publique
func UploadProductImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "uploads"
	}

	// Nom d'objet unique pour éviter l'écrasement entre uploads de même nom
	ext := filepath.Ext(file.Filename)
	objectName := uuid.New().String() + strings.ToLower(ext)

	_, err = database.MinIO.PutObject(ctx, bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/uploads/%s", objectName), nil
}

// FetchProductImage ouvre un objet image depuis MinIO pour le servir en HTTP
func FetchProductImage(ctx context.Context, objectName string) (io.ReadCloser, string, error) {
	if database.MinIO == nil {
		return nil, "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "uploads"
	}

	obj, err := database.MinIO.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}

	// GetObject est paresseux : Stat force la requête et détecte l'objet absent
	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, "", err
	}

	contentType := stat.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return obj, contentType, nil
}
