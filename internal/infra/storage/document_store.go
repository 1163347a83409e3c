package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// ======================================================
// Document store (anexos de licença médica)
// ======================================================

// Imagens maiores que isso são reduzidas antes do upload.
const maxDocumentWidth = 2000

const webpQuality = 80

type DocumentStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewDocumentStore(cfg *config.Config) *DocumentStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// endpoint custom (MinIO em dev)
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	baseURL := cfg.S3BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf(
			"https://%s.s3.%s.amazonaws.com",
			cfg.S3Bucket, cfg.S3Region,
		)
	}

	return &DocumentStore{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SaveLeaveDocument aceita pdf/jpg/jpeg/png. PDF sobe como está;
// imagem é reconvertida para webp (e reduzida se for grande demais)
// antes do upload. Devolve a URL pública do objeto.
func (s *DocumentStore) SaveLeaveDocument(
	ctx context.Context,
	filename string,
	data []byte,
) (string, error) {

	ext := strings.ToLower(filepath.Ext(filename))

	var (
		body        []byte
		contentType string
		outExt      string
	)

	switch ext {
	case ".pdf":
		body = data
		contentType = "application/pdf"
		outExt = ".pdf"

	case ".jpg", ".jpeg", ".png":
		img, err := decodeImage(ext, data)
		if err != nil {
			return "", httperr.ErrBusiness("invalid_document")
		}

		img = shrinkIfNeeded(img)

		var buf bytes.Buffer
		if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
			return "", err
		}

		body = buf.Bytes()
		contentType = "image/webp"
		outExt = ".webp"

	default:
		return "", httperr.ErrBusiness("invalid_document_type")
	}

	key := "leave_documents/" + uuid.NewString() + outExt

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return s.baseURL + "/" + key, nil
}

func decodeImage(ext string, data []byte) (image.Image, error) {
	if ext == ".png" {
		return png.Decode(bytes.NewReader(data))
	}
	return jpeg.Decode(bytes.NewReader(data))
}

func shrinkIfNeeded(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxDocumentWidth {
		return img
	}

	h := b.Dy() * maxDocumentWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxDocumentWidth, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
