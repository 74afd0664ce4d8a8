package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "brezalfc_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler barre token_blacklist y refresh_tokens
// caducados una vez al día. TTL del blacklist configurable por env.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Limpiando token_blacklist y refresh_tokens...")

			before := time.Now().UTC().Add(-time.Duration(ttlDays) * 24 * time.Hour)
			if n, err := authRepo.CleanupExpiredBlacklist(db, before); err != nil {
				log.Printf("[CLEANUP ERROR] blacklist: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d tokens de blacklist borrados", n)
			}

			if n, err := authRepo.CleanupExpiredRefreshTokens(db); err != nil {
				log.Printf("[CLEANUP ERROR] refresh_tokens: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d refresh tokens caducados borrados", n)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
