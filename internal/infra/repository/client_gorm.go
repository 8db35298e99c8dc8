package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/models"
	"github.com/BruksfildServices01/barber-crm/internal/validators"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	client *models.Client,
) error {
	return wrapErr(
		r.db.WithContext(ctx).Create(client).Error,
		"client_not_found",
	)
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	client *models.Client,
) error {
	return wrapErr(
		r.db.WithContext(ctx).Save(client).Error,
		"client_not_found",
	)
}

// Delete remove cliente e agendamentos na mesma transação. Política de
// cascata: a exclusão observada no produto é incondicional, então os
// agendamentos vão junto em vez de ficarem órfãos.
func (r *ClientGormRepository) Delete(
	ctx context.Context,
	ownerID, clientID string,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("owner_id = ? AND id = ?", ownerID, clientID).
			Delete(&models.Client{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.
			Where("owner_id = ? AND client_id = ?", ownerID, clientID).
			Delete(&models.Appointment{}).Error
	})

	return wrapErr(err, "client_not_found")
}

func (r *ClientGormRepository) FindByID(
	ctx context.Context,
	ownerID, clientID string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, clientID).
		First(&client).Error
	if err != nil {
		return nil, wrapErr(err, "client_not_found")
	}
	return &client, nil
}

func (r *ClientGormRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]models.Client, error) {

	var clients []models.Client
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&clients).Error
	if err != nil {
		return nil, wrapErr(err, "client_not_found")
	}
	return clients, nil
}

func (r *ClientGormRepository) SearchByOwner(
	ctx context.Context,
	ownerID, term string,
) ([]models.Client, error) {

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return r.ListByOwner(ctx, ownerID)
	}

	like := "%" + term + "%"
	digits := "%" + validators.OnlyDigits(term) + "%"

	q := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID)

	if validators.OnlyDigits(term) != "" {
		q = q.Where(
			"LOWER(name) LIKE ? OR phone_digits LIKE ? OR LOWER(email) LIKE ?",
			like, digits, like,
		)
	} else {
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ?",
			like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, wrapErr(err, "client_not_found")
	}
	return clients, nil
}

func (r *ClientGormRepository) ListRecent(
	ctx context.Context,
	ownerID string,
	limit int,
) ([]models.Client, error) {

	var clients []models.Client
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&clients).Error
	if err != nil {
		return nil, wrapErr(err, "client_not_found")
	}
	return clients, nil
}

func (r *ClientGormRepository) CountByOwner(
	ctx context.Context,
	ownerID string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, wrapErr(err, "client_not_found")
	}
	return count, nil
}

// Compile-time check
var _ schedule.ClientRepository = (*ClientGormRepository)(nil)
