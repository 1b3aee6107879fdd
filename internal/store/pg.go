package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ufund-io/ufund-v2/internal/domain"
	"github.com/ufund-io/ufund-v2/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

func (s *pgStore) CreateNeed(ctx context.Context, need *schema.Need) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Need{}).Where("name = ?", need.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check need name: %w", err)
		}
		if count > 0 {
			return domain.ErrNeedExists
		}

		if err := tx.Create(need).Error; err != nil {
			return fmt.Errorf("failed to create need: %w", err)
		}

		return nil
	})
}

func (s *pgStore) GetNeedByID(ctx context.Context, needID int64) (*schema.Need, error) {
	var need schema.Need
	err := s.db.WithContext(ctx).Where("id = ?", needID).First(&need).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &need, nil
}

func (s *pgStore) GetNeedsByIDs(ctx context.Context, needIDs []int64) ([]*schema.Need, error) {
	if len(needIDs) == 0 {
		return nil, nil
	}

	var needs []*schema.Need
	err := s.db.WithContext(ctx).
		Where("id IN ?", needIDs).
		Find(&needs).Error
	if err != nil {
		return nil, err
	}
	return needs, nil
}

func (s *pgStore) ListNeeds(ctx context.Context, nameFilter string) ([]*schema.Need, error) {
	query := s.db.WithContext(ctx).Model(&schema.Need{})
	if nameFilter != "" {
		query = query.Where("name ILIKE ?", "%"+nameFilter+"%")
	}

	var needs []*schema.Need
	if err := query.Order("id").Find(&needs).Error; err != nil {
		return nil, err
	}
	return needs, nil
}

func (s *pgStore) UpdateNeed(ctx context.Context, need *schema.Need) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Need{}).
		Where("id = ?", need.ID).
		Updates(map[string]interface{}{
			"name":               need.Name,
			"type":               need.Type,
			"description":        need.Description,
			"price_cents":        need.PriceCents,
			"quantity_needed":    need.QuantityNeeded,
			"quantity_fulfilled": need.QuantityFulfilled,
			"urgency":            need.Urgency,
			"images":             need.Images,
			"updated_at":         gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update need: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNeedNotFound
	}
	return nil
}

func (s *pgStore) DeleteNeed(ctx context.Context, needID int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", needID).Delete(&schema.Need{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete need: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNeedNotFound
	}
	return nil
}

func (s *pgStore) IncrementFulfilled(ctx context.Context, attemptID string, userName string, needID int64, quantity int64) (*schema.Need, error) {
	var need schema.Need
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt := schema.CheckoutAttempt{
			AttemptID: attemptID,
			NeedID:    needID,
			Op:        schema.CheckoutOpFulfill,
			UserName:  userName,
			Quantity:  quantity,
		}
		// Claiming the (attempt_id, need_id, op) key makes retries no-ops
		claim := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attempt_id"}, {Name: "need_id"}, {Name: "op"}},
			DoNothing: true,
		}).Create(&attempt)
		if claim.Error != nil {
			return fmt.Errorf("failed to record checkout attempt: %w", claim.Error)
		}

		if claim.RowsAffected > 0 {
			// The capacity predicate keeps concurrent increments from jointly
			// overshooting the target quantity
			result := tx.Model(&schema.Need{}).
				Where("id = ? AND quantity_fulfilled + ? <= quantity_needed", needID, quantity).
				Updates(map[string]interface{}{
					"quantity_fulfilled": gorm.Expr("quantity_fulfilled + ?", quantity),
					"updated_at":         gorm.Expr("now()"),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to increment fulfilled quantity: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				var count int64
				if err := tx.Model(&schema.Need{}).Where("id = ?", needID).Count(&count).Error; err != nil {
					return fmt.Errorf("failed to check need: %w", err)
				}
				if count == 0 {
					return domain.ErrNeedNotFound
				}
				return domain.ErrInvalidQuantity
			}
		}

		if err := tx.Where("id = ?", needID).First(&need).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNeedNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &need, nil
}

func (s *pgStore) GetBasketByID(ctx context.Context, basketID int64) (*schema.Basket, error) {
	var basket schema.Basket
	err := s.db.WithContext(ctx).Where("id = ?", basketID).First(&basket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &basket, nil
}

func (s *pgStore) GetBasketByUserName(ctx context.Context, userName string) (*schema.Basket, error) {
	var basket schema.Basket
	err := s.db.WithContext(ctx).Where("user_name = ?", userName).First(&basket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &basket, nil
}

func (s *pgStore) GetBasketOwner(ctx context.Context, basketID int64) (string, error) {
	var basket schema.Basket
	err := s.db.WithContext(ctx).Select("user_name").Where("id = ?", basketID).First(&basket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrBasketNotFound
		}
		return "", err
	}
	return basket.UserName, nil
}

func (s *pgStore) GetBasketLines(ctx context.Context, basketID int64) (map[int64]int64, error) {
	var lines []schema.BasketLine
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Basket{}).Where("id = ?", basketID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check basket: %w", err)
		}
		if count == 0 {
			return domain.ErrBasketNotFound
		}

		return tx.Where("basket_id = ?", basketID).Find(&lines).Error
	})
	if err != nil {
		return nil, err
	}

	quantities := make(map[int64]int64, len(lines))
	for _, line := range lines {
		quantities[line.NeedID] = line.Quantity
	}
	return quantities, nil
}

func (s *pgStore) UpsertBasketLine(ctx context.Context, basketID int64, needID int64, quantity int64) (int64, error) {
	if quantity < 1 {
		return 0, domain.ErrInvalidQuantity
	}

	line := schema.BasketLine{
		BasketID: basketID,
		NeedID:   needID,
		Quantity: quantity,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Basket{}).Where("id = ?", basketID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check basket: %w", err)
		}
		if count == 0 {
			return domain.ErrBasketNotFound
		}

		// Adding an already-present need folds into the existing line
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "basket_id"}, {Name: "need_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("basket_lines.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("now()"),
			}),
		}).Clauses(clause.Returning{Columns: []clause.Column{{Name: "quantity"}}}).
			Create(&line).Error; err != nil {
			return fmt.Errorf("failed to upsert basket line: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return line.Quantity, nil
}

func (s *pgStore) AddBasketLineQuantity(ctx context.Context, basketID int64, needID int64, delta int64) (int64, error) {
	var quantity int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A delta that would push the quantity below 1 removes the line
		// instead. The delete and the update are each atomic, so concurrent
		// adjustments never interleave into a partial state.
		removed := tx.Where("basket_id = ? AND need_id = ? AND quantity + ? < 1", basketID, needID, delta).
			Delete(&schema.BasketLine{})
		if removed.Error != nil {
			return fmt.Errorf("failed to remove basket line: %w", removed.Error)
		}
		if removed.RowsAffected > 0 {
			quantity = 0
			return nil
		}

		result := tx.Model(&schema.BasketLine{}).
			Where("basket_id = ? AND need_id = ?", basketID, needID).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + ?", delta),
				"updated_at": gorm.Expr("now()"),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to adjust basket line: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrLineNotFound
		}

		var line schema.BasketLine
		if err := tx.Where("basket_id = ? AND need_id = ?", basketID, needID).First(&line).Error; err != nil {
			return err
		}
		quantity = line.Quantity
		return nil
	})
	if err != nil {
		return 0, err
	}
	return quantity, nil
}

func (s *pgStore) DeleteBasketLine(ctx context.Context, basketID int64, needID int64) error {
	err := s.db.WithContext(ctx).
		Where("basket_id = ? AND need_id = ?", basketID, needID).
		Delete(&schema.BasketLine{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete basket line: %w", err)
	}
	return nil
}

func (s *pgStore) ClearBasket(ctx context.Context, basketID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Basket{}).Where("id = ?", basketID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check basket: %w", err)
		}
		if count == 0 {
			return domain.ErrBasketNotFound
		}

		if err := tx.Where("basket_id = ?", basketID).Delete(&schema.BasketLine{}).Error; err != nil {
			return fmt.Errorf("failed to clear basket: %w", err)
		}
		return nil
	})
}

func (s *pgStore) CreateProfile(ctx context.Context, profile *schema.Profile) (*schema.Basket, error) {
	var basket schema.Basket
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Profile{}).Where("user_name = ?", profile.UserName).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check profile: %w", err)
		}
		if count > 0 {
			return domain.ErrProfileExists
		}

		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		// Every helper gets exactly one basket
		basket = schema.Basket{UserName: profile.UserName}
		if err := tx.Create(&basket).Error; err != nil {
			return fmt.Errorf("failed to create basket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &basket, nil
}

func (s *pgStore) GetProfile(ctx context.Context, userName string) (*schema.Profile, error) {
	var profile schema.Profile
	err := s.db.WithContext(ctx).
		Preload("Contributions").
		Where("user_name = ?", userName).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (s *pgStore) ListProfiles(ctx context.Context, includePrivate bool) ([]*schema.Profile, error) {
	query := s.db.WithContext(ctx).Model(&schema.Profile{}).Preload("Contributions")
	if !includePrivate {
		query = query.Where("private = false")
	}

	var profiles []*schema.Profile
	if err := query.Order("user_name").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *pgStore) UpdateProfile(ctx context.Context, profile *schema.Profile) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Profile{}).
		Where("user_name = ?", profile.UserName).
		Updates(map[string]interface{}{
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"email":      profile.Email,
			"country":    profile.Country,
			"private":    profile.Private,
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (s *pgStore) SetProfilePrivacy(ctx context.Context, userName string, private bool) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Profile{}).
		Where("user_name = ?", userName).
		Updates(map[string]interface{}{
			"private":    private,
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set profile privacy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (s *pgStore) DeleteProfile(ctx context.Context, userName string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var basket schema.Basket
		err := tx.Where("user_name = ?", userName).First(&basket).Error
		if err == nil {
			if err := tx.Where("basket_id = ?", basket.ID).Delete(&schema.BasketLine{}).Error; err != nil {
				return fmt.Errorf("failed to delete basket lines: %w", err)
			}
			if err := tx.Delete(&basket).Error; err != nil {
				return fmt.Errorf("failed to delete basket: %w", err)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Where("user_name = ?", userName).Delete(&schema.Contribution{}).Error; err != nil {
			return fmt.Errorf("failed to delete contributions: %w", err)
		}

		result := tx.Where("user_name = ?", userName).Delete(&schema.Profile{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete profile: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrProfileNotFound
		}
		return nil
	})
}

func (s *pgStore) AddContribution(ctx context.Context, attemptID string, userName string, needID int64, quantity int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt := schema.CheckoutAttempt{
			AttemptID: attemptID,
			NeedID:    needID,
			Op:        schema.CheckoutOpContribute,
			UserName:  userName,
			Quantity:  quantity,
		}
		claim := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attempt_id"}, {Name: "need_id"}, {Name: "op"}},
			DoNothing: true,
		}).Create(&attempt)
		if claim.Error != nil {
			return fmt.Errorf("failed to record checkout attempt: %w", claim.Error)
		}
		if claim.RowsAffected == 0 {
			// Already applied by an earlier retry of the same attempt
			return nil
		}

		contribution := schema.Contribution{
			UserName: userName,
			NeedID:   needID,
			Quantity: quantity,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_name"}, {Name: "need_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("contributions.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("now()"),
			}),
		}).Create(&contribution).Error; err != nil {
			return fmt.Errorf("failed to upsert contribution: %w", err)
		}
		return nil
	})
}
