package handlers

import (
	"io"
	"net/http"

	"github.com/pribylovaa/foundation-portal/internal/listsync"
	"github.com/pribylovaa/foundation-portal/internal/service"
	"github.com/pribylovaa/foundation-portal/internal/views"
)

// Home рисует главную. Новости и партнёры читаются параллельно;
// упавший список рисуется пустым, остальные не страдают.
// Слайдер рисуется в состоянии загрузки: слайды читает его SSE-поток.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	news := listsync.New(h.catalog.NewsQuery(), h.catalog.ListNews,
		listsync.WithObserver(h.metrics),
	)
	partners := listsync.New(service.PartnersQuery, h.catalog.ListPartners,
		listsync.WithPolicy(listsync.PolicyLog),
		listsync.WithObserver(h.metrics),
	)

	group := listsync.NewGroup(news, partners)
	defer group.Dispose()

	// Ошибки уже отражены в состоянии списков и залогированы по их политике.
	_ = group.Load(r.Context())

	data := views.NewHomeData()
	data.News = news.State()
	data.Partners = partners.State()
	data.Slider = views.SliderData{Loading: true}

	render(w, r, func(out io.Writer) error { return h.views.Home(out, data) })
}

// PartnersFragment рисует только блок партнёров. Пустой список даёт пустой ответ.
func (h *Handlers) PartnersFragment(w http.ResponseWriter, r *http.Request) {
	partners := listsync.New(service.PartnersQuery, h.catalog.ListPartners,
		listsync.WithPolicy(listsync.PolicyLog),
		listsync.WithObserver(h.metrics),
	)
	defer partners.Dispose()

	_ = partners.Load(r.Context())

	st := partners.State()
	render(w, r, func(out io.Writer) error { return h.views.Partners(out, st) })
}
