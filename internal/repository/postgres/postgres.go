package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/GooferByte/rewardcatalog/internal/models"
	"github.com/GooferByte/rewardcatalog/internal/repository"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const resourceColumns = `id, name, release_date, added_date, developer_name, publisher_name, headline, description, price,
	cover_image, hero_image, image, images, platform, tags, quantity`

// Repository implements the catalog and balance repositories backed by PostgreSQL.
type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListResources(ctx context.Context) ([]models.RewardResource, error) {
	query := `SELECT ` + resourceColumns + ` FROM reward_resources ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RewardResource{}
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *Repository) GetResource(ctx context.Context, id string) (*models.RewardResource, error) {
	query := `SELECT ` + resourceColumns + ` FROM reward_resources WHERE id = $1`
	res, err := scanResource(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *Repository) UpsertResource(ctx context.Context, res models.RewardResource) error {
	const query = `
		INSERT INTO reward_resources
		(id, name, release_date, added_date, developer_name, publisher_name, headline, description, price,
		 cover_image, hero_image, image, images, platform, tags, quantity)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			release_date = EXCLUDED.release_date,
			added_date = EXCLUDED.added_date,
			developer_name = EXCLUDED.developer_name,
			publisher_name = EXCLUDED.publisher_name,
			headline = EXCLUDED.headline,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			cover_image = EXCLUDED.cover_image,
			hero_image = EXCLUDED.hero_image,
			image = EXCLUDED.image,
			images = EXCLUDED.images,
			platform = EXCLUDED.platform,
			tags = EXCLUDED.tags,
			quantity = EXCLUDED.quantity
	`
	var quantity interface{}
	if res.Quantity != nil {
		quantity = *res.Quantity
	}
	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.Name, nullableString(res.ReleaseDate), nullableString(res.AddedDate), res.DeveloperName, res.PublisherName,
		res.Headline, res.Description, res.Price, res.CoverImage, res.HeroImage, res.Image, pq.Array(res.Images),
		res.Platform, pq.Array(res.Tags), quantity)
	return err
}

func (r *Repository) GetBalance(ctx context.Context, userID string) (*models.EarningBalance, error) {
	const query = `
		SELECT user_id, current_balance, lifetime_balance, total_xp, bonus_multiplier, bonus_earned, bonus_limit, updated_at
		FROM earning_balances
		WHERE user_id = $1
	`
	var (
		bal                   models.EarningBalance
		current, lifetime     decimal.NullDecimal
		xp, multiplier        sql.NullFloat64
		bonusEarned, bonusCap decimal.NullDecimal
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&bal.UserID, &current, &lifetime, &xp, &multiplier, &bonusEarned, &bonusCap, &bal.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if current.Valid {
		bal.CurrentBalance = &current.Decimal
	}
	if lifetime.Valid {
		bal.LifetimeBalance = &lifetime.Decimal
	}
	if xp.Valid {
		bal.TotalXP = &xp.Float64
	}
	if multiplier.Valid {
		bal.Bonus = &models.BonusEarningRate{
			Multiplier:        multiplier.Float64,
			EarnedAmount:      bonusEarned.Decimal,
			EarnedAmountLimit: bonusCap.Decimal,
		}
	}
	return &bal, nil
}

func (r *Repository) SaveBalance(ctx context.Context, bal models.EarningBalance) error {
	const query = `
		INSERT INTO earning_balances
		(user_id, current_balance, lifetime_balance, total_xp, bonus_multiplier, bonus_earned, bonus_limit, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (user_id) DO UPDATE SET
			current_balance = EXCLUDED.current_balance,
			lifetime_balance = EXCLUDED.lifetime_balance,
			total_xp = EXCLUDED.total_xp,
			bonus_multiplier = EXCLUDED.bonus_multiplier,
			bonus_earned = EXCLUDED.bonus_earned,
			bonus_limit = EXCLUDED.bonus_limit,
			updated_at = EXCLUDED.updated_at
	`
	var multiplier, earned, limit interface{}
	if bal.Bonus != nil {
		multiplier = bal.Bonus.Multiplier
		earned = bal.Bonus.EarnedAmount
		limit = bal.Bonus.EarnedAmountLimit
	}
	updatedAt := bal.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, query,
		bal.UserID, nullableDecimal(bal.CurrentBalance), nullableDecimal(bal.LifetimeBalance), nullableFloat(bal.TotalXP),
		multiplier, earned, limit, updatedAt)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (models.RewardResource, error) {
	var (
		res                    models.RewardResource
		releaseDate, addedDate sql.NullString
		cover, hero, image     sql.NullString
		quantity               sql.NullInt64
	)
	err := row.Scan(&res.ID, &res.Name, &releaseDate, &addedDate, &res.DeveloperName, &res.PublisherName,
		&res.Headline, &res.Description, &res.Price, &cover, &hero, &image, pq.Array(&res.Images),
		&res.Platform, pq.Array(&res.Tags), &quantity)
	if err != nil {
		return res, err
	}
	res.ReleaseDate = releaseDate.String
	res.AddedDate = addedDate.String
	res.CoverImage = nullStringPtr(cover)
	res.HeroImage = nullStringPtr(hero)
	res.Image = nullStringPtr(image)
	if quantity.Valid {
		q := int(quantity.Int64)
		res.Quantity = &q
	}
	return res, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableDecimal(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return *d
}

func nullableFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
