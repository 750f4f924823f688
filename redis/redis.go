package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// StoreOTP keeps a password-reset OTP for the given email with a TTL.
func StoreOTP(email, otp string, ttl time.Duration) error {
	return Client.Set(Ctx, "otp:"+email, otp, ttl).Err()
}

// VerifyOTP checks the stored OTP and deletes it on a match.
func VerifyOTP(email, otp string) (bool, error) {
	stored, err := Client.Get(Ctx, "otp:"+email).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != otp {
		return false, nil
	}
	Client.Del(Ctx, "otp:"+email)
	return true, nil
}
