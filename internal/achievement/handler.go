package achievement

import (
	"net/http"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

func ListAchievements(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]any{
		"achievements": Catalog(),
	})
}
