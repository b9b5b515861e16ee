package repository

import "github.com/baropoint/tubegate/internal/domain/entity"

type FavoriteRepository interface {
	// Get all favorites bookmarked by the user ID.
	GetByUserId(userId string) ([]*entity.Favorite, error)
}
