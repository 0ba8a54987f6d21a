package database

import (
	"fmt"
	"log"
	"os"

	"github.com/PotterFan92/wizard-duels-backend/internal/platform/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是全局的数据库句柄，在启动时初始化后注入各模块
var DB *gorm.DB

// InitDB 初始化数据库连接
func InitDB(cfg config.SqliteConfig) error {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent,
			Colorful:      true,
		},
	)

	path := cfg.Path
	if path == "" {
		path = "duels.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("无法获取底层数据库连接: %w", err)
	}
	// SQLite只有一个写入者，限制连接池以避免SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)

	DB = db
	fmt.Println("数据库连接成功！")
	return nil
}
