package s3_test

import (
	"staybook/config"
	"staybook/infras/otel/mocks"
	"staybook/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetObjectNameFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "hotels"
	cfg.External.S3.PublicDomain = "https://cdn.staybook.test/"
	cfg.External.S3.APIEndpoint = "https://s3.staybook.test"
	cfg.External.S3.AccessKeyID = "key"
	cfg.External.S3.SecretAccessKey = "secret"

	storage := s3.New(cfg, mocks.NewOtel())

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "public url", url: "https://cdn.staybook.test/hotels/h-1/main.jpg", expected: "hotels/h-1/main.jpg"},
		{name: "api url with bucket", url: "https://s3.staybook.test/hotels/h-1/main.jpg", expected: "h-1/main.jpg"},
		{name: "foreign url", url: "https://images.example.com/main.jpg", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, storage.GetObjectNameFromURL("", tt.url))
		})
	}
}
