package app

import (
	"errors"

	"SimplyRugby/internal/club/domain"
)

// 应用层直接复用领域错误，调用方用 errors.Is 判断。
var (
	ErrPlayerNotFound        = domain.ErrPlayerNotFound
	ErrSkillCategoryNotFound = domain.ErrSkillCategoryNotFound
	ErrDataCorrupt           = domain.ErrDataCorrupt
)

// IsNotFound 判断是否为“查无结果”类的业务错误。
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPlayerNotFound) || errors.Is(err, ErrSkillCategoryNotFound)
}
