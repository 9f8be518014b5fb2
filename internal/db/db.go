package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/amal-dz/amal/internal/models"
)

// Connect opens the MySQL connection and runs migrations. Startup
// failures are fatal.
func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	return gdb
}
