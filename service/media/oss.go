package media

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"joigo-tour-backend/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

const presignExpiry = 15 * time.Minute

var (
	clientOnce sync.Once
	client     *oss.Client
)

func ossClient() *oss.Client {
	clientOnce.Do(func() {
		cfg := &oss.Config{
			Region: oss.Ptr(config.Cfg.OSS.Region),
			CredentialsProvider: credentials.NewStaticCredentialsProvider(
				config.Cfg.OSS.AccessKeyID,
				config.Cfg.OSS.AccessKeySecret,
			),
		}
		client = oss.NewClient(cfg)
	})
	return client
}

// GenerateUploadURL 前端直传 tour 图片的预签名地址
func GenerateUploadURL(ctx context.Context, objectName string) (string, error) {
	result, err := ossClient().Presign(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(config.Cfg.OSS.BucketName),
		Key:    oss.Ptr(objectName),
	}, oss.PresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload url: %v", err)
	}
	return result.URL, nil
}

// GenerateDownloadURL 私有 bucket 中图片的临时访问地址
func GenerateDownloadURL(ctx context.Context, objectName string) (string, error) {
	result, err := ossClient().Presign(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(config.Cfg.OSS.BucketName),
		Key:    oss.Ptr(objectName),
	}, oss.PresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign download url: %v", err)
	}
	return result.URL, nil
}

// UploadObject 服务端直接上传，迁移脚本使用
func UploadObject(ctx context.Context, objectName string, data []byte) error {
	_, err := ossClient().PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(config.Cfg.OSS.BucketName),
		Key:    oss.Ptr(objectName),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %v", objectName, err)
	}
	return nil
}
