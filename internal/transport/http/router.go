package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/medforum/threads-service/internal/service"
	"github.com/medforum/threads-service/internal/transport/http/handlers"
	"github.com/medforum/threads-service/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/v1"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.AuthUser(),           // вынимаем X-User-Id платформенного гейтвея в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// votes & scores
	r.Post("/votes/{target_type}/{target_id}", h.CastVote)
	r.Get("/scores/{target_type}/{target_id}", h.Score)
	r.Get("/scores/{target_type}", h.Scores)

	// posts
	r.Post("/posts", h.CreatePost)
	r.Get("/posts/{post_id}", h.Post)
	r.Delete("/posts/{post_id}", h.DeletePost)
	r.Put("/posts/{post_id}/lock", h.SetPostLocked)
	r.Put("/posts/{post_id}/pin", h.SetPostPinned)
	r.Get("/communities/{community_id}/posts", h.ListPosts)

	// comments
	r.Post("/posts/{post_id}/comments", h.CreateComment)
	r.Get("/posts/{post_id}/comments", h.CommentTree)
	r.Delete("/comments/{comment_id}", h.DeleteComment)

	// attachments
	r.Post("/posts/{post_id}/attachments/upload-url", h.AttachmentUploadURL)
	r.Post("/posts/{post_id}/attachments/confirm", h.ConfirmAttachment)

	// karma
	r.Get("/users/{user_id}/karma", h.Karma)
	r.Post("/users/{user_id}/karma/recompute", h.RecomputeKarma)
	r.Post("/karma/recompute", h.RecomputeAllKarma)
}
