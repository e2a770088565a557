package admin

import (
	"github.com/saulo-duarte/quiz-arena/internal/question"
	"github.com/saulo-duarte/quiz-arena/internal/score"
	"github.com/saulo-duarte/quiz-arena/internal/user"
)

type AdminContainer struct {
	Service Service
	Handler *Handler
}

func NewAdminContainer(questions question.Service, scores score.Service, users user.Service, settings Settings) *AdminContainer {
	service := NewService(questions, scores, users, settings)
	handler := NewHandler(service)

	return &AdminContainer{
		Service: service,
		Handler: handler,
	}
}
