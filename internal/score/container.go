package score

import "gorm.io/gorm"

type ScoreContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewScoreContainer(db *gorm.DB) *ScoreContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ScoreContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
