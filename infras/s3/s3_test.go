package s3_test

import (
	"cowork/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
		endpoint  string
		expected  string
	}{
		{
			name:      "public url wins",
			publicURL: "https://cdn.example.com/",
			endpoint:  "http://minio:9000",
			expected:  "https://cdn.example.com/reports/report_06-13-2024.json",
		},
		{
			name:     "path style endpoint",
			endpoint: "http://minio:9000",
			expected: "http://minio:9000/cowork/reports/report_06-13-2024.json",
		},
		{
			name:     "bare bucket",
			expected: "s3://cowork/reports/report_06-13-2024.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := s3.ObjectURL(tt.publicURL, tt.endpoint, "cowork", "reports/report_06-13-2024.json")

			assert.Equal(t, tt.expected, url)
		})
	}
}
