package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	InternalAPIKey string

	// Integrasi diary (sistem rekap eksternal)
	DiaryBaseURL string
	DiaryToken   string
	DiaryTimeout time.Duration

	// Worker sinkronisasi
	SyncInterval    time.Duration
	SyncBatchSize   int
	SyncMaxAttempts int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	InternalAPIKey = GetEnv("INTERNAL_API_KEY")

	DiaryBaseURL = GetEnv("DIARY_BASE_URL")
	DiaryToken = GetEnv("DIARY_TOKEN")
	DiaryTimeout = time.Duration(GetEnvInt("DIARY_TIMEOUT_MS", 5000)) * time.Millisecond

	SyncInterval = time.Duration(GetEnvInt("SYNC_INTERVAL_MS", 60000)) * time.Millisecond
	SyncBatchSize = GetEnvInt("SYNC_BATCH_SIZE", 100)
	SyncMaxAttempts = GetEnvInt("SYNC_MAX_ATTEMPTS", 10)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if DiaryBaseURL == "" {
		log.Println("⚠️ DIARY_BASE_URL belum diset — sinkronisasi diary akan selalu gagal.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvInt: baca env numerik, fallback ke default kalau kosong/invalid
func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️ ENV %s bukan angka (%q), pakai default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
