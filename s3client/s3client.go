package s3client

import (
	"fmt"
	"os"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const presignExpiry = 15 * time.Minute

// GetPresignedUrlForMedia returns a presigned PUT url for uploading media
// (profile photos, post attachments) and the public url it will be served
// from once uploaded.
func GetPresignedUrlForMedia(tenant, userId, mediaExtension string) (string, string) {
	bucket := os.Getenv("TALENT_MEDIA_BUCKET")
	region := os.Getenv("TALENT_MEDIA_REGION")

	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(region),
	}))
	svc := s3.New(sess)

	key := fmt.Sprintf("%s/%s/%s.%s", tenant, userId, uuid.NewString(), mediaExtension)

	req, _ := svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	uploadUrl, err := req.Presign(presignExpiry)
	if err != nil {
		logger.Error("Failed presigning upload url", zap.Error(err))
		return "", ""
	}

	downloadUrl := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
	return uploadUrl, downloadUrl
}
