package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/questlog/pkg/models"
)

type questHandler struct {
	quests    QuestSupplier
	resources []models.LearningResource
	logger    *zap.Logger
	now       func() time.Time
}

func newQuestHandler(quests QuestSupplier, resources []models.LearningResource, logger *zap.Logger) *questHandler {
	return &questHandler{
		quests:    quests,
		resources: resources,
		logger:    logger,
		now:       time.Now,
	}
}

// dailyQuests and generateQuests share the same generation path; the list
// is produced fresh on every call
func (h *questHandler) dailyQuests(c *gin.Context) {
	h.respondQuests(c)
}

func (h *questHandler) generateQuests(c *gin.Context) {
	h.respondQuests(c)
}

func (h *questHandler) respondQuests(c *gin.Context) {
	quests := h.quests.GetDailyQuests(c.Request.Context())
	h.logger.Debug("quests generated", zap.Int("count", len(quests)))

	c.JSON(http.StatusOK, models.DailyQuestsResponse{
		Quests:      quests,
		GeneratedAt: h.now().UTC(),
	})
}

func (h *questHandler) listResources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resources": h.resources})
}

func (h *questHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
