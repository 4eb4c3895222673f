package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
	"github.com/dmitrijs2005/gophfood/internal/dbx"
)

// SQLiteRepository implements Repository over the image_versions table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, img *models.ImageVersion) error {
	query := `INSERT INTO image_versions (mid, version, image) VALUES (?, ?, ?)
		ON CONFLICT(mid) DO UPDATE SET version = excluded.version, image = excluded.image`

	if _, err := r.db.ExecContext(ctx, query, img.MenuID, img.Version, img.Payload); err != nil {
		return fmt.Errorf("failed to upsert image[%d]: %w", img.MenuID, err)
	}
	return nil
}

func (r *SQLiteRepository) GetVersion(ctx context.Context, mid int) (int, bool, error) {
	var version int
	err := r.db.QueryRowContext(ctx, `SELECT version FROM image_versions WHERE mid = ?`, mid).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get image version[%d]: %w", mid, err)
	}
	return version, true, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, mid int) (*models.ImageVersion, error) {
	img := &models.ImageVersion{}
	err := r.db.QueryRowContext(ctx, `SELECT mid, version, image FROM image_versions WHERE mid = ?`, mid).
		Scan(&img.MenuID, &img.Version, &img.Payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image[%d]: %w", mid, err)
	}
	return img, nil
}

func (r *SQLiteRepository) ListVersions(ctx context.Context) ([]models.ImageVersion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT mid, version FROM image_versions ORDER BY mid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list image versions: %w", err)
	}
	defer rows.Close()

	var result []models.ImageVersion
	for rows.Next() {
		var item models.ImageVersion
		if err := rows.Scan(&item.MenuID, &item.Version); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
