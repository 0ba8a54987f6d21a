package spell

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gorm.io/gorm"
)

// ErrSpellNotFound 表示给定的SpellID不在目录中
var ErrSpellNotFound = errors.New("spell not found in catalog")

// SpellInfo 持有法术的静态数据，在程序启动时加载到内存中
type SpellInfo struct {
	Name        string
	Description string
	Color       string
	Type        SpellType
}

// repository 是spell模块的中央数据仓库。
// 目录在部署时固定，加载完成后只读，因此无需加锁。
type repository struct {
	idToIndex   map[string]int
	indexToInfo []SpellInfo
	indexToID   []string
}

// globalRepository 是我们仓库的私有单例实例
var globalRepository *repository

// InitializeRepository 从数据库加载静态法术数据，初始化内存仓库。
// 这个函数应该在应用启动时且仅调用一次。
func InitializeRepository(db *gorm.DB) error {
	var spellsFromDB []Spell
	if err := db.Order("id asc").Find(&spellsFromDB).Error; err != nil {
		return fmt.Errorf("无法从数据库加载法术静态数据: %w", err)
	}
	if len(spellsFromDB) == 0 {
		return errors.New("法术目录为空，无法初始化仓库")
	}

	repo := &repository{
		idToIndex:   make(map[string]int, len(spellsFromDB)),
		indexToInfo: make([]SpellInfo, len(spellsFromDB)),
		indexToID:   make([]string, len(spellsFromDB)),
	}
	for i, s := range spellsFromDB {
		repo.idToIndex[s.SpellID] = i
		repo.indexToInfo[i] = SpellInfo{
			Name:        s.Name,
			Description: s.Description,
			Color:       s.Color,
			Type:        s.Type,
		}
		repo.indexToID[i] = s.SpellID
	}

	globalRepository = repo
	fmt.Printf("法术目录已加载到内存，共 %d 条。\n", len(spellsFromDB))
	return nil
}

// GetSpellCount 返回目录中法术的总数
func GetSpellCount() int {
	if globalRepository == nil {
		return 0
	}
	return len(globalRepository.indexToID)
}

// GetInfoByID 按SpellID查找法术的静态信息
func GetInfoByID(spellID string) (SpellInfo, error) {
	if globalRepository == nil {
		return SpellInfo{}, errors.New("法术仓库尚未初始化")
	}
	idx, ok := globalRepository.idToIndex[spellID]
	if !ok {
		return SpellInfo{}, ErrSpellNotFound
	}
	return globalRepository.indexToInfo[idx], nil
}

// DrawRandomSpell 从目录中均匀随机抽取一个法术，返回它的ID和静态信息。
// Webhook触发的对决中，双方法术都由这里抽取。
func DrawRandomSpell() (string, SpellInfo, error) {
	if globalRepository == nil || len(globalRepository.indexToID) == 0 {
		return "", SpellInfo{}, errors.New("法术仓库尚未初始化")
	}
	idx := rand.IntN(len(globalRepository.indexToID))
	return globalRepository.indexToID[idx], globalRepository.indexToInfo[idx], nil
}

// AllSpells 返回目录中全部法术的快照，按加载顺序排列
func AllSpells() []Spell {
	if globalRepository == nil {
		return nil
	}
	result := make([]Spell, 0, len(globalRepository.indexToID))
	for i, id := range globalRepository.indexToID {
		info := globalRepository.indexToInfo[i]
		result = append(result, Spell{
			SpellID:     id,
			Name:        info.Name,
			Type:        info.Type,
			Description: info.Description,
			Color:       info.Color,
		})
	}
	return result
}
