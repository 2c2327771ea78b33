package configs

import (
	"github.com/smartZeee/worker-side/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Worker{}, &entity.Credential{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
