package api

import (
	"cmp"
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/rangepicker/internal/picker"
	"github.com/nikmy/rangepicker/internal/ranges"
	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/logger"
	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

func NewServer(cfg Config, log logger.Logger, repo ranges.Repo, pickers *picker.Factory) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: cfg.Proxy.Header != "",
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods: []string{
			fiber.MethodGet,
			fiber.MethodHead,
			fiber.MethodPost,
			fiber.MethodDelete,
		},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return sendError(c, http.StatusInternalServerError, "internal error")
	}

	s := &server{
		repo:    repo,
		pickers: pickers,
		http:    fiber.New(fiberCfg),
		addr:    cfg.HTTP.Addr,
		secret:  []byte(cfg.Auth.Secret),
		log:     serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	repo    ranges.Repo
	pickers *picker.Factory
	http    *fiber.App
	addr    string
	secret  []byte
	log     logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return errors.WrapFailf(err, "listen on %s", s.addr)
	case <-ctx.Done():
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	return errors.WrapFail(err, "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Get("/month", s.handleMonth)
	s.http.Post("/tap", s.handleTap)
	s.http.Get("/ranges", s.authenticate, s.handleListRanges)
	s.http.Delete("/ranges", s.authenticate, s.handleDeleteRange)
}

func (s *server) handleMonth(c *fiber.Ctx) error {
	years, err := s.getYearsOrErr(c)
	if err != nil {
		s.log.Debug(err)
		return sendError(c, http.StatusBadRequest, err.Error())
	}

	state := s.pickers.New(rangepicker.WithYearRange(years.Min, years.Max))

	// without a page the current month is shown, clamped to the years
	page := state.DisplayedPage()
	if raw := c.Query("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return sendError(c, http.StatusBadRequest, "malformed \"page\" param")
		}
		if !state.InBounds(page) {
			return sendError(c, http.StatusBadRequest, "page is outside the year range")
		}
	}
	state.SetDisplayedMonth(page)

	f := rangepicker.NewFormatter(cmp.Or(c.Query("lang"), s.pickers.Language()))
	return c.Status(http.StatusOK).JSON(monthOf(state, f))
}

func (s *server) handleTap(c *fiber.Ctx) error {
	var req tapRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal tap payload"))
		return sendError(c, http.StatusBadRequest, "bad json")
	}

	if req.Timestamp == nil {
		return sendError(c, http.StatusBadRequest, "missing required field \"timestamp\"")
	}

	err = picker.Validate(req.Snapshot)
	if err != nil {
		return sendError(c, http.StatusBadRequest, err.Error())
	}

	state := s.pickers.Restore(req.Snapshot)
	accepted := rangepicker.TapMillis(state, *req.Timestamp)

	return c.Status(http.StatusOK).JSON(tapResponse{
		Snapshot: rangepicker.Save(state),
		Phase:    rangepicker.PhaseOf(state).String(),
		Accepted: accepted,
		Days:     daysOf(state),
	})
}

func (s *server) handleListRanges(c *fiber.Ctx) error {
	owner, authenticated := authenticatedUser(c)

	raw := c.Query("user")
	if raw == "" && authenticated {
		raw = strconv.FormatInt(owner, 10)
	}

	user, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "missing or malformed \"user\" param")
	}

	if authenticated && user != owner {
		return sendError(c, http.StatusForbidden, "foreign ranges")
	}

	rs, err := s.repo.ListByUser(c.Context(), user)
	if err != nil {
		return errors.WrapFail(err, "list ranges")
	}

	if rs == nil {
		rs = []ranges.Range{}
	}
	return c.Status(http.StatusOK).JSON(rs)
}

func (s *server) handleDeleteRange(c *fiber.Ctx) error {
	id, err := s.getIDOrErr(c)
	if err != nil {
		s.log.Warn(err)
		return sendError(c, http.StatusBadRequest, "missing required parameter \"id\"")
	}

	if owner, ok := authenticatedUser(c); ok {
		owned, err := s.owns(c, owner, id)
		if err != nil {
			return err
		}
		if !owned {
			return sendError(c, http.StatusNotFound, "no such range")
		}
	}

	deleted, err := s.repo.Delete(c.Context(), id)
	if err != nil {
		return errors.WrapFail(err, "delete range")
	}

	if !deleted {
		return sendError(c, http.StatusNotFound, "no such range")
	}
	return c.Status(http.StatusOK).Send(nil)
}

func (s *server) owns(c *fiber.Ctx, user int64, id string) (bool, error) {
	rs, err := s.repo.ListByUser(c.Context(), user)
	if err != nil {
		return false, errors.WrapFail(err, "list ranges")
	}

	for _, r := range rs {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

func (s *server) getIDOrErr(c *fiber.Ctx) (string, error) {
	id := c.Query("id", "")
	if id == "" {
		return "", errors.New("got empty \"id\" param")
	}

	return id, nil
}

func (s *server) getYearsOrErr(c *fiber.Ctx) (rangepicker.YearRange, error) {
	years := s.pickers.Years()

	for _, q := range [...]struct {
		name string
		dst  *int
	}{
		{"min", &years.Min},
		{"max", &years.Max},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}

		v, err := strconv.Atoi(raw)
		if err != nil {
			return years, errors.Errorf("malformed %q param %q", q.name, raw)
		}
		*q.dst = v
	}

	if years.Min <= 0 || years.Max < years.Min {
		return years, errors.Errorf("bad year range [%d, %d]", years.Min, years.Max)
	}
	return years, nil
}
