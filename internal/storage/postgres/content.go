package postgres

import (
	"context"
	"fmt"

	"github.com/pribylovaa/foundation-portal/internal/models"
	"github.com/pribylovaa/foundation-portal/internal/storage"
)

// ListNews возвращает последние новости вместе с данными об изображениях.
// Сортировка фиксирована: published_at DESC, id DESC.
// Первое изображение выбирается по (sort_order, id) внутри news_images.
func (s *Storage) ListNews(ctx context.Context, limit int32) ([]models.NewsItem, error) {
	const op = "storage.postgres.ListNews"

	if limit <= 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	rows, err := s.db.Query(ctx, `
	SELECT n.id, n.title, n.category, n.excerpt, n.published_at,
		COALESCE(img.image_url, ''), COALESCE(cnt.image_count, 0)
	FROM news n
	LEFT JOIN LATERAL (
		SELECT image_url FROM news_images
		WHERE news_id = n.id
		ORDER BY sort_order, id
		LIMIT 1
	) img ON true
	LEFT JOIN LATERAL (
		SELECT count(*)::int AS image_count FROM news_images
		WHERE news_id = n.id
	) cnt ON true
	ORDER BY n.published_at DESC, n.id DESC
	LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.NewsItem
	for rows.Next() {
		var item models.NewsItem
		if scanErr := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Category,
			&item.Excerpt,
			&item.PublishedAt,
			&item.ImageURL,
			&item.ImageCount,
		); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		item.PublishedAt = item.PublishedAt.UTC()
		items = append(items, item)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// ListPartners возвращает партнёров по sort_order ASC.
// logo_path отдаётся как есть: публичный адрес собирает сервис.
func (s *Storage) ListPartners(ctx context.Context) ([]models.Partner, error) {
	const op = "storage.postgres.ListPartners"

	rows, err := s.db.Query(ctx, `
	SELECT id, name, logo_path, website_url, sort_order
	FROM partners
	ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Partner
	for rows.Next() {
		var p models.Partner
		if scanErr := rows.Scan(&p.ID, &p.Name, &p.LogoPath, &p.WebsiteURL, &p.SortOrder); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// ListSlides возвращает слайды по sort_order ASC.
func (s *Storage) ListSlides(ctx context.Context) ([]models.Slide, error) {
	const op = "storage.postgres.ListSlides"

	rows, err := s.db.Query(ctx, `
	SELECT id, image_url, title, subtitle, sort_order
	FROM slider_images
	ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Slide
	for rows.Next() {
		var sl models.Slide
		if scanErr := rows.Scan(&sl.ID, &sl.ImageURL, &sl.Title, &sl.Subtitle, &sl.SortOrder); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, sl)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// ListSidebarItems возвращает пункты меню админ-портала по sort_order ASC.
func (s *Storage) ListSidebarItems(ctx context.Context) ([]models.SidebarItem, error) {
	const op = "storage.postgres.ListSidebarItems"

	rows, err := s.db.Query(ctx, `
	SELECT id, label, href, icon_name, sort_order
	FROM admin_sidebar_items
	ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.SidebarItem
	for rows.Next() {
		var it models.SidebarItem
		if scanErr := rows.Scan(&it.ID, &it.Label, &it.Href, &it.IconName, &it.SortOrder); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, it)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}
