package session

import "time"

type SessionContainer struct {
	Store   Store
	Service Service
	Handler *Handler
}

func NewSessionContainer(store Store, questions QuestionSource, scores ScoreRecorder, users StatsRecorder, opts Options, ttl time.Duration) *SessionContainer {
	service := NewService(store, questions, scores, users, opts)
	handler := NewHandler(service, ttl)

	return &SessionContainer{
		Store:   store,
		Service: service,
		Handler: handler,
	}
}
