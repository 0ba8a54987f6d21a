package spell

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PrimeModule 负责初始化spell模块的数据库表和内存仓库
func PrimeModule(db *gorm.DB) error {
	if err := migrateDB(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}
	return InitializeRepository(db)
}

// migrateDB 负责自动迁移数据库表结构
func migrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&Spell{}); err != nil {
		return fmt.Errorf("无法迁移spell表: %w", err)
	}
	return nil
}

// seedCatalog 将固定目录写入数据库。
// 按SpellID冲突时跳过，重复启动不会产生重复行。
func seedCatalog(db *gorm.DB) error {
	rows := make([]Spell, len(catalogSeed))
	copy(rows, catalogSeed)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "spell_id"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("无法写入法术目录: %w", err)
	}
	fmt.Println("法术目录已就绪。")
	return nil
}
