package implementation

import (
	"context"

	"support-chatbot-be/internal/entity"
	"support-chatbot-be/internal/mapper"
	"support-chatbot-be/internal/model"
	"support-chatbot-be/internal/repository/contract"
	"support-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ConversationLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationLogMapper
}

func NewConversationLogRepository(db *gorm.DB) contract.ConversationLogRepository {
	return &ConversationLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationLogMapper(),
	}
}

func (r *ConversationLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationLogRepositoryImpl) Create(ctx context.Context, logEntry *entity.ConversationLog) error {
	m := r.mapper.ToModel(logEntry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*logEntry = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConversationLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationLog, error) {
	var models []*model.ConversationLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ConversationLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ConversationLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.ConversationLog{}).Count(&count).Error
	return count, err
}
