package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/olaria/storefront/internal/contact/domain"
)

type messageRepository struct{ db *gorm.DB }

func NewMessageRepository(db *gorm.DB) domain.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Save(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
