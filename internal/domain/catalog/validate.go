package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 5000
	maxTags              = 20
	maxTagLength         = 50
	maxImages            = 10
	minPublicationYear   = 1800
)

// Validator 字段校验器,收集全部错误后一次性返回
type Validator struct {
	Errors map[string]string
}

// NewValidator 创建校验器
func NewValidator() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid 是否没有错误
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError 记录错误,同一字段只保留第一条
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check ok为false时记录错误
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Err 转换为校验错误,无错误时返回nil
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return apperrors.Invalid("参数校验失败", v.Errors)
}

// In 判断value是否在列表中
func In(value string, list ...string) bool {
	for _, candidate := range list {
		if value == candidate {
			return true
		}
	}
	return false
}

// IsMoney 正数且最多两位小数
func IsMoney(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Truncate(2))
}

// validateItem 校验所有目录通用的规则
func validateItem(it *Item, v *Validator, now time.Time) {
	title := strings.TrimSpace(it.Title)
	v.Check(title != "", "title", "标题不能为空")
	v.Check(len([]rune(title)) <= maxTitleLength, "title", fmt.Sprintf("标题不能超过%d个字符", maxTitleLength))
	v.Check(len([]rune(it.Description)) <= maxDescriptionLength, "description", fmt.Sprintf("描述不能超过%d个字符", maxDescriptionLength))

	v.Check(IsMoney(it.Price), "price", "价格必须大于0且最多两位小数")
	if it.DiscountPrice != nil {
		v.Check(IsMoney(*it.DiscountPrice), "discountPrice", "折扣价必须大于0且最多两位小数")
		v.Check(it.DiscountPrice.LessThan(it.Price), "discountPrice", "折扣价必须低于原价")
	}

	v.Check(it.StockQuantity >= 0, "stockQuantity", "库存不能为负数")
	v.Check(it.StockQuantity <= MaxStockQuantity, "stockQuantity", "库存超出上限")
	v.Check(it.LowStockThreshold >= 0, "lowStockThreshold", "低库存阈值不能为负数")

	v.Check(len(it.Tags) <= maxTags, "tags", fmt.Sprintf("最多%d个标签", maxTags))
	for _, tag := range it.Tags {
		v.Check(len([]rune(tag)) <= maxTagLength, "tags", fmt.Sprintf("标签不能超过%d个字符", maxTagLength))
	}
	v.Check(len(it.Images) <= maxImages, "images", fmt.Sprintf("最多%d张图片", maxImages))

	if it.PublicationYear != nil {
		year := *it.PublicationYear
		v.Check(year >= minPublicationYear && year <= now.Year()+1, "publicationYear",
			fmt.Sprintf("出版年份必须在%d到%d之间", minPublicationYear, now.Year()+1))
	}

	if it.Status != "" {
		_, err := ParseStatus(string(it.Status))
		v.Check(err == nil, "status", ErrInvalidStatus.Message)
	}
}
