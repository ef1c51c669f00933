package services

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"mbapi/config"
)

func s3Client() *s3.S3 {
	cfg := config.GetConfig()
	creds := credentials.NewStaticCredentials(cfg.AWS_ACCESS_KEY_ID, cfg.AWS_SECRET_ACCESS_KEY, "")
	awsCfg := aws.NewConfig().WithRegion(cfg.AWS_REGION).WithCredentials(creds)
	return s3.New(session.New(), awsCfg)
}

// FetchCatalogFile pulls a catalog source (area_code.csv / post_price.csv)
// from the bucket into media/load/ ahead of an import. A missing bucket
// config is not an error, the import then reads whatever is on disk.
func FetchCatalogFile(name string) error {
	cfg := config.GetConfig()
	if cfg.AWS_BUCKET == "" {
		return nil
	}

	out, err := s3Client().GetObject(&s3.GetObjectInput{
		Bucket: aws.String(cfg.AWS_BUCKET),
		Key:    aws.String("/load/" + name),
	})
	if err != nil {
		return err
	}
	defer out.Body.Close()

	b, err := ioutil.ReadAll(out.Body)
	if err != nil {
		return err
	}
	localPath := filepath.Join("media", "load", name)
	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(localPath, b, 0644)
}

// UploadReportArtifact stores the raw report payload next to the webhook
// delivery so reports can be replayed.
func UploadReportArtifact(name string, data []byte) string {
	cfg := config.GetConfig()
	if cfg.AWS_BUCKET == "" {
		return ""
	}

	path := "/reports/" + name
	fileType := http.DetectContentType(data)
	_, err := s3Client().PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(cfg.AWS_BUCKET),
		Key:           aws.String(path),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(fileType),
	})
	if err != nil {
		fmt.Println("ERROR MUST FIX: ", err)
		return ""
	}
	return path
}
