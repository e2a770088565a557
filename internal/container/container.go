package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saulo-duarte/quiz-arena/internal/admin"
	"github.com/saulo-duarte/quiz-arena/internal/aiquiz"
	"github.com/saulo-duarte/quiz-arena/internal/auth"
	"github.com/saulo-duarte/quiz-arena/internal/config"
	"github.com/saulo-duarte/quiz-arena/internal/question"
	"github.com/saulo-duarte/quiz-arena/internal/router"
	"github.com/saulo-duarte/quiz-arena/internal/score"
	"github.com/saulo-duarte/quiz-arena/internal/session"
	"github.com/saulo-duarte/quiz-arena/internal/user"
)

type Container struct {
	QuestionContainer *question.QuestionContainer
	ScoreContainer    *score.ScoreContainer
	UserContainer     *user.UserContainer
	SessionContainer  *session.SessionContainer
	AIQuizContainer   *aiquiz.AIQuizContainer
	AdminContainer    *admin.AdminContainer
	AuthHandler       *auth.Handler

	corsOrigins []string
	redis       *redis.Client
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	log := config.WithContext(ctx)

	auth.Init(cfg.JWTSecret)

	if err := config.Connect(ctx, cfg.DBDriver, cfg.DatabaseDSN); err != nil {
		return nil, err
	}
	if err := config.DB.WithContext(ctx).AutoMigrate(&question.Question{}, &score.Record{}, &user.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	questionContainer := question.NewQuestionContainer(config.DB)
	scoreContainer := score.NewScoreContainer(config.DB)
	userContainer := user.NewUserContainer(config.DB)

	if cfg.SeedQuestions {
		n, err := question.Seed(ctx, questionContainer.Repo)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			log.WithField("count", n).Info("Seeded starter questions")
		}
	}

	c := &Container{corsOrigins: cfg.CORSOrigins}

	store, err := c.sessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c.QuestionContainer = questionContainer
	c.ScoreContainer = scoreContainer
	c.UserContainer = userContainer
	c.SessionContainer = session.NewSessionContainer(
		store,
		questionContainer.Service,
		scoreContainer.Service,
		userContainer.Service,
		session.Options{
			QuestionsPerQuiz:  cfg.QuestionsPerQuiz,
			RecordEveryAnswer: cfg.RecordEveryAnswer,
		},
		cfg.SessionTTL,
	)
	c.AIQuizContainer = aiquiz.NewAIQuizContainer(ctx, cfg.GeminiModel, questionContainer.Service)
	c.AdminContainer = admin.NewAdminContainer(
		questionContainer.Service,
		scoreContainer.Service,
		userContainer.Service,
		admin.Settings{
			QuestionsPerQuiz:   cfg.QuestionsPerQuiz,
			TimeLimit:          cfg.TimeLimit,
			PassingScore:       cfg.PassingScore,
			ShowCorrectAnswers: true,
			RecordEveryAnswer:  cfg.RecordEveryAnswer,
		},
	)
	c.AuthHandler = auth.NewHandler(
		auth.NewAuthenticator(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash),
		cfg.AdminTokenTTL,
	)
	return c, nil
}

func (c *Container) sessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	log := config.WithContext(ctx)

	if cfg.SessionStore != "redis" {
		log.Info("Using in-memory session store")
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	c.redis = client
	log.WithField("addr", cfg.RedisAddr).Info("Using redis session store")
	return session.NewRedisStore(client, cfg.SessionTTL), nil
}

// Handler builds the HTTP surface over the wired services.
func (c *Container) Handler() http.Handler {
	return router.New(router.RouterConfig{
		SessionHandler:  c.SessionContainer.Handler,
		ScoreHandler:    c.ScoreContainer.Handler,
		UserHandler:     c.UserContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		AIQuizHandler:   c.AIQuizContainer.Handler,
		AdminHandler:    c.AdminContainer.Handler,
		AuthHandler:     c.AuthHandler,
		CORSOrigins:     c.corsOrigins,
	})
}

func (c *Container) Close() error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return err
		}
	}
	if config.DB == nil {
		return nil
	}
	sqlDB, err := config.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
