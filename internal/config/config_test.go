package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "APP_ENV", "LOG_LEVEL", "MAX_UPLOAD_BYTES",
		"STORAGE_DRIVER", "STORAGE_ACCOUNT_URL", "IMAGES_CONTAINER",
		"AZURE_STORAGE_CONNECTION_STRING",
		"STORAGE_ENDPOINT", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY", "STORAGE_USE_SSL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_ACCOUNT_URL", "https://acct.blob.core.windows.net/")
	t.Setenv("AZURE_STORAGE_CONNECTION_STRING", "UseDevelopmentStorage=true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, DriverAzure, cfg.StorageDriver)
	assert.Equal(t, "lanternfly-images", cfg.Container)
	assert.Equal(t, DefaultMaxUploadBytes, cfg.MaxUploadBytes)
	assert.Equal(t, "https://acct.blob.core.windows.net/lanternfly-images", cfg.ContainerURL())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "azure without anything",
			env:     map[string]string{},
			wantErr: "STORAGE_ACCOUNT_URL, AZURE_STORAGE_CONNECTION_STRING",
		},
		{
			name:    "azure without connection string",
			env:     map[string]string{"STORAGE_ACCOUNT_URL": "https://acct"},
			wantErr: "AZURE_STORAGE_CONNECTION_STRING",
		},
		{
			name: "s3 without keys",
			env: map[string]string{
				"STORAGE_DRIVER":      "s3",
				"STORAGE_ACCOUNT_URL": "http://localhost:9000",
				"STORAGE_ENDPOINT":    "localhost:9000",
			},
			wantErr: "STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY",
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"STORAGE_DRIVER": "ftp", "STORAGE_ACCOUNT_URL": "https://acct"},
			wantErr: `unknown STORAGE_DRIVER "ftp"`,
		},
		{
			name: "bad upload limit",
			env: map[string]string{
				"STORAGE_ACCOUNT_URL":             "https://acct",
				"AZURE_STORAGE_CONNECTION_STRING": "x",
				"MAX_UPLOAD_BYTES":                "ten",
			},
			wantErr: "parse MAX_UPLOAD_BYTES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadS3(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "S3")
	t.Setenv("STORAGE_ACCOUNT_URL", "http://localhost:9000")
	t.Setenv("STORAGE_ENDPOINT", "localhost:9000")
	t.Setenv("STORAGE_ACCESS_KEY", "minioadmin")
	t.Setenv("STORAGE_SECRET_KEY", "minioadmin")
	t.Setenv("STORAGE_USE_SSL", "true")
	t.Setenv("IMAGES_CONTAINER", "photos")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverS3, cfg.StorageDriver)
	assert.True(t, cfg.StorageUseSSL)
	assert.Equal(t, "http://localhost:9000/photos", cfg.ContainerURL())
}
