package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database named by the DB_* environment variables.
// DB_DRIVER=sqlite selects a file-backed SQLite database (DB_NAME as
// path), anything else selects MySQL.
func InitDB() (*gorm.DB, error) {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		name := os.Getenv("DB_NAME")
		if name == "" {
			name = "booknow.db"
		}
		return gorm.Open(sqlite.Open(name), &gorm.Config{})
	}

	user := envOr("DB_USER", "root")
	pass := os.Getenv("DB_PASS")
	host := envOr("DB_HOST", "127.0.0.1")
	port := envOr("DB_PORT", "3306")
	name := envOr("DB_NAME", "booknow")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, name)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
