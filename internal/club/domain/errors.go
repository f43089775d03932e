package domain

import "SimplyRugby/modules/kit/errx"

// Code 表示领域错误码。
//
// 约定：
// - 领域层只关心“是什么错”（code）和上下文（data：uid、category）
// - “查无结果”属于预期内的业务结果，不捕获栈
type Code = errx.Code

const (
	CodePlayerNotFound        Code = "CLUB_PLAYER_NOT_FOUND"
	CodeSkillCategoryNotFound Code = "CLUB_SKILL_CATEGORY_NOT_FOUND"
	// CodeDataCorrupt 复用 kit 的统一系统码。
	CodeDataCorrupt Code = errx.CodeDataCorrupt
)

type Error = errx.Error

var (
	ErrPlayerNotFound        = errx.NewBiz(CodePlayerNotFound, "球员不存在")
	ErrSkillCategoryNotFound = errx.NewBiz(CodeSkillCategoryNotFound, "技能分类不存在")
	ErrDataCorrupt           = errx.ErrDataCorrupt
)

// PlayerNotFound 派生带 uid 的球员缺失错误。
func PlayerNotFound(uid int) *Error {
	return ErrPlayerNotFound.WithData("uid", uid)
}

// SkillCategoryNotFound 派生带分类名与 uid 的分类缺失错误。
func SkillCategoryNotFound(category string, uid int) *Error {
	return ErrSkillCategoryNotFound.WithDataMap(map[string]any{
		"category": category,
		"uid":      uid,
	})
}
