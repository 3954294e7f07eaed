package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/gpu-reserve-go/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

func InitMinio() {
	endpoint := config.MinioEndpoint
	accessKey := config.MinioAccessKey
	secretKey := config.MinioSecretKey
	useSSL := config.MinioUseSSL
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}

	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
}

// Transcript is the audit document archived for every interpreted request:
// the verbatim input plus the raw candidate the model produced, so any
// later decision can be reproduced from stored data.
type Transcript struct {
	ReservationID uint            `json:"reservation_id"`
	UserID        uint            `json:"user_id"`
	RequestText   string          `json:"request_text"`
	Candidate     json.RawMessage `json:"candidate"`
	ArchivedAt    time.Time       `json:"archived_at"`
}

// Archiver is the boundary the reservation service depends on.
type Archiver interface {
	PutTranscript(ctx context.Context, t Transcript) error
}

type BucketArchiver struct{}

func (BucketArchiver) PutTranscript(ctx context.Context, t Transcript) error {
	t.ArchivedAt = time.Now()
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	objectName := fmt.Sprintf("transcripts/%d/%s.json", t.ReservationID, uuid.NewString())
	_, err = Client.PutObject(ctx, BucketName, objectName, bytes.NewReader(data), int64(len(data)), minioSDK.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}

// NoopArchiver is used in tests and when no MinIO endpoint is configured.
type NoopArchiver struct{}

func (NoopArchiver) PutTranscript(ctx context.Context, t Transcript) error { return nil }
