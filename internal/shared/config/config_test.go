package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("JWT_REFRESH_EXPIRES_IN", "")
	t.Setenv("REFRESH_TOKEN_STORE", "")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.JWT.JWTExpiresIn)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiresIn)
	assert.Equal(t, StorePostgres, cfg.JWT.RefreshStore)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Contains(t, cfg.Database.DSN, "dbname=triply_db")
}

func TestLoad_DurationForms(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "90m")
	t.Setenv("JWT_REFRESH_EXPIRES_IN", "3600")

	cfg := Load()

	assert.Equal(t, 90*time.Minute, cfg.JWT.JWTExpiresIn)
	assert.Equal(t, time.Hour, cfg.JWT.RefreshExpiresIn)
}

func TestLoad_KafkaBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,,")

	cfg := Load()

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		jwt     JWTConfig
		wantErr string
	}{
		{
			name: "valid",
			jwt:  JWTConfig{Secret: "a", RefreshSecret: "b", RefreshStore: StorePostgres},
		},
		{
			name:    "missing refresh secret",
			jwt:     JWTConfig{Secret: "a", RefreshStore: StorePostgres},
			wantErr: "must be set",
		},
		{
			name:    "identical secrets",
			jwt:     JWTConfig{Secret: "same", RefreshSecret: "same", RefreshStore: StorePostgres},
			wantErr: "must differ",
		},
		{
			name:    "unknown store",
			jwt:     JWTConfig{Secret: "a", RefreshSecret: "b", RefreshStore: "memcached"},
			wantErr: "REFRESH_TOKEN_STORE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{JWT: tt.jwt}
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
