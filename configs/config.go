package config

import "os"

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	Port           string
	FrontendURL    string
	UploadsDir     string
	StorageBackend string // "local" or "r2"
	R2             R2
}

func LoadConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "3000"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:5173"),
		UploadsDir:     getEnv("UPLOADS_DIR", "uploads"),
		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
