package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	apierrors "github.com/pribylovaa/foundation-portal/internal/errors"
	"github.com/pribylovaa/foundation-portal/internal/listsync"
	"github.com/pribylovaa/foundation-portal/internal/service"
	"github.com/pribylovaa/foundation-portal/internal/slider"
	"github.com/pribylovaa/foundation-portal/internal/views"
	"github.com/pribylovaa/foundation-portal/pkg/log"
)

// SliderStream держит SSE-поток слайдера главной: одна карусель на поток,
// каждый сдвиг (таймер или навигация) отправляет новый фрагмент.
// Карусель создаётся пустой и получает число слайдов после единственного чтения.
// Разрыв соединения закрывает карусель.
func (h *Handlers) SliderStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sse := datastar.NewSSE(w, r)

	c := slider.New(0, h.site.SliderInterval)
	id := h.hub.Register(c)
	defer h.hub.Remove(id)

	h.metrics.StreamOpened()
	defer h.metrics.StreamClosed()

	lg := log.From(ctx).With(slog.String("view_id", id))

	list := listsync.New(service.SlidesQuery, h.catalog.ListSlides,
		listsync.WithObserver(h.metrics),
	)
	defer list.Dispose()

	if err := list.Load(ctx); err != nil {
		// Слайдер деградирует молча: пустая секция вместо ошибки.
		lg.Debug("slider_slides_failed", slog.String("err", err.Error()))
		if html, rerr := h.views.SliderHTML(views.SliderData{}); rerr == nil {
			_ = sse.PatchElements(html)
		}
		return
	}

	slides := list.Items()
	c.SetCount(len(slides))
	lg.Debug("slider_stream_open",
		slog.Int("slides", len(slides)),
		slog.Bool("autoplay", c.TimerActive()),
		slog.Int("streams", h.hub.Len()),
	)

	patch := func() error {
		html, err := h.views.SliderHTML(views.SliderData{
			ViewID:  id,
			Slides:  slides,
			Current: c.Current(),
		})
		if err != nil {
			_ = sse.ConsoleError(err)
			return err
		}
		return sse.PatchElements(html)
	}

	if err := patch(); err != nil {
		lg.Debug("slider_patch_failed", slog.String("err", err.Error()))
		return
	}

	for {
		select {
		case <-ctx.Done():
			lg.Debug("slider_stream_closed")
			return
		case <-c.Changes():
			if err := patch(); err != nil {
				lg.Debug("slider_patch_failed", slog.String("err", err.Error()))
				return
			}
		}
	}
}

// SliderNav двигает карусель потока {view}: next, prev или goto?i=N.
func (h *Handlers) SliderNav(w http.ResponseWriter, r *http.Request) {
	c, ok := h.hub.Get(chi.URLParam(r, "view"))
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrNotFound)
		return
	}

	switch chi.URLParam(r, "action") {
	case "next":
		c.Next()
	case "prev":
		c.Prev()
	case "goto":
		i, err := strconv.Atoi(r.URL.Query().Get("i"))
		if err != nil {
			apierrors.WriteError(w, r, apierrors.ErrBadRequest)
			return
		}
		if err := c.GoTo(i); err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
	default:
		apierrors.WriteError(w, r, apierrors.ErrNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
