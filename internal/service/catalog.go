package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/foundation-portal/internal/icons"
	"github.com/pribylovaa/foundation-portal/internal/listsync"
	"github.com/pribylovaa/foundation-portal/internal/models"
	"github.com/pribylovaa/foundation-portal/pkg/log"
)

// MaxNews — верхняя граница блока новостей.
const MaxNews = 6

// Описания чтений для listsync.
var (
	PartnersQuery = listsync.Query{Table: "partners", OrderBy: "sort_order", Ascending: true}
	SlidesQuery   = listsync.Query{Table: "slider_images", OrderBy: "sort_order", Ascending: true}
	SidebarQuery  = listsync.Query{Table: "admin_sidebar_items", OrderBy: "sort_order", Ascending: true}
)

// NewsQuery описывает чтение новостей с текущим лимитом.
func (s *Service) NewsQuery() listsync.Query {
	return listsync.Query{
		Table:   "news",
		Join:    "news_images",
		OrderBy: "published_at",
		Limit:   int(s.newsLimit()),
	}
}

func (s *Service) newsLimit() int32 {
	limit := s.cfg.Site.NewsLimit
	if limit <= 0 || limit > MaxNews {
		limit = MaxNews
	}
	return limit
}

// ListNews возвращает последние новости (published_at DESC, не более MaxNews).
// Новость без изображений получает заглушку из конфигурации.
func (s *Service) ListNews(ctx context.Context) ([]models.NewsItem, error) {
	const op = "service.catalog.ListNews"

	limit := s.newsLimit()
	items, err := s.storage.ListNews(ctx, limit)
	if err != nil {
		return nil, unavailable(op, err)
	}

	if len(items) > int(limit) {
		items = items[:limit]
	}

	for i := range items {
		if items[i].ImageURL == "" {
			items[i].ImageURL = s.cfg.Site.PlaceholderImage
		}
	}

	return items, nil
}

// ListPartners возвращает партнёров по sort_order ASC с публичными адресами логотипов.
// Не удалось разрешить адрес одного логотипа — у партнёра пустой LogoURL,
// список целиком остаётся рабочим.
func (s *Service) ListPartners(ctx context.Context) ([]models.Partner, error) {
	const op = "service.catalog.ListPartners"

	partners, err := s.storage.ListPartners(ctx)
	if err != nil {
		return nil, unavailable(op, err)
	}

	lg := log.From(ctx)
	for i := range partners {
		if partners[i].LogoPath == "" {
			continue
		}

		u, err := s.objects.PublicURL(ctx, s.cfg.S3.PartnersBucket, partners[i].LogoPath)
		if err != nil {
			lg.Warn("partner_logo_url_failed",
				slog.String("op", op),
				slog.String("partner_id", partners[i].ID.String()),
				slog.String("err", err.Error()),
			)
			continue
		}
		partners[i].LogoURL = u
	}

	return partners, nil
}

// ListSlides возвращает слайды по sort_order ASC.
func (s *Service) ListSlides(ctx context.Context) ([]models.Slide, error) {
	const op = "service.catalog.ListSlides"

	slides, err := s.storage.ListSlides(ctx)
	if err != nil {
		return nil, unavailable(op, err)
	}

	return slides, nil
}

// ListSidebarItems возвращает пункты меню по sort_order ASC с разрешёнными иконками.
func (s *Service) ListSidebarItems(ctx context.Context) ([]models.SidebarItem, error) {
	const op = "service.catalog.ListSidebarItems"

	items, err := s.storage.ListSidebarItems(ctx)
	if err != nil {
		return nil, unavailable(op, err)
	}

	lg := log.From(ctx)
	for i := range items {
		kind := icons.Parse(items[i].IconName)
		if kind == icons.Unknown {
			s.metrics.ObserveUnknownIcon()
			lg.Debug("sidebar_icon_unknown",
				slog.String("op", op),
				slog.String("icon_name", items[i].IconName),
			)
		}
		items[i].Icon = kind.Symbol()
	}

	return items, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
