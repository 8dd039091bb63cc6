package logic

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// RecordLogic 通用的整表查询/按ID查询/插入
type RecordLogic[T any] struct {
	db *gorm.DB
}

// NewRecordLogic 创建通用记录逻辑
func NewRecordLogic[T any](db *gorm.DB) *RecordLogic[T] {
	return &RecordLogic[T]{db: db}
}

// List 获取全部记录
func (r *RecordLogic[T]) List(ctx context.Context) ([]T, error) {
	records := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// FindByID 按ID查询, 未找到时返回空切片而不是错误
func (r *RecordLogic[T]) FindByID(ctx context.Context, id int64) ([]T, error) {
	records := make([]T, 0)
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("find record %d: %w", id, err)
	}
	return records, nil
}

// Create 插入一条记录并回填主键与时间戳
func (r *RecordLogic[T]) Create(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}
