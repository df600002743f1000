package repository

import (
	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"

	"gorm.io/gorm"
)

type PositionRepository interface {
	Create(pos *model.Position) error
	FindByID(id uint) (*model.Position, error)
	FindByCode(code string) (*model.Position, error)
	GetAll(opts ListOptions) ([]model.Position, error)
	GetByLevel(level model.PositionLevel, opts ListOptions) ([]model.Position, error)
	Update(pos *model.Position) error
	Delete(id uint) error
}

type positionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db}
}

func (r *positionRepository) Create(pos *model.Position) error {
	return apperror.FromDB(r.db.Create(pos).Error, "position")
}

func (r *positionRepository) FindByID(id uint) (*model.Position, error) {
	var pos model.Position
	if err := r.db.First(&pos, id).Error; err != nil {
		return nil, apperror.FromDB(err, "position")
	}
	return &pos, nil
}

func (r *positionRepository) FindByCode(code string) (*model.Position, error) {
	var pos model.Position
	if err := r.db.Where("code = ?", code).First(&pos).Error; err != nil {
		return nil, apperror.FromDB(err, "position")
	}
	return &pos, nil
}

func (r *positionRepository) GetAll(opts ListOptions) ([]model.Position, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	var positions []model.Position
	err = r.db.Order("title asc").Order("id asc").
		Offset(opts.Skip).Limit(opts.Limit).
		Find(&positions).Error
	if err != nil {
		return nil, apperror.FromDB(err, "position")
	}
	return positions, nil
}

func (r *positionRepository) GetByLevel(level model.PositionLevel, opts ListOptions) ([]model.Position, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	var positions []model.Position
	err = r.db.Where("level = ?", level).
		Order("title asc").Order("id asc").
		Offset(opts.Skip).Limit(opts.Limit).
		Find(&positions).Error
	if err != nil {
		return nil, apperror.FromDB(err, "position")
	}
	return positions, nil
}

func (r *positionRepository) Update(pos *model.Position) error {
	return apperror.FromDB(r.db.Save(pos).Error, "position")
}

// Delete is a hard delete; employees referencing the position get their
// position_id cleared, mirroring the department pattern.
func (r *positionRepository) Delete(id uint) error {
	res := r.db.Unscoped().Delete(&model.Position{}, id)
	if res.Error != nil {
		return apperror.FromDB(res.Error, "position")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("position not found")
	}
	return nil
}
