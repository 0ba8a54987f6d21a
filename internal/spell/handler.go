package spell

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogSpellResponse 是法术目录接口的响应模型
type CatalogSpellResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        SpellType `json:"type"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
}

// GetCatalog 返回完整的法术目录，供控制台和前端展示使用
func GetCatalog(c *gin.Context) {
	spells := AllSpells()
	response := make([]CatalogSpellResponse, 0, len(spells))
	for _, s := range spells {
		response = append(response, CatalogSpellResponse{
			ID:          s.SpellID,
			Name:        s.Name,
			Type:        s.Type,
			Description: s.Description,
			Color:       s.Color,
		})
	}
	c.JSON(http.StatusOK, response)
}
