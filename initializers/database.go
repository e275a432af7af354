package initializers

import (
	"fmt"
	"log"

	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectToDB opens the MySQL connection. TranslateError is on so unique
// constraint violations surface as gorm.ErrDuplicatedKey.
func ConnectToDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Cart{},
		&models.CartItem{},
		&models.Blog{},
		&models.Contact{},
	)
	if err != nil {
		return fmt.Errorf("sync database: %w", err)
	}
	log.Println("Database synced successfully.")
	return nil
}
