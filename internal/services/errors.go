package services

import (
	"errors"
)

// 市场操作的错误分类。全部是终态、调用方可见的结果，
// 引擎内部不做任何重试；除 ErrTransferFailed 外均为纯校验失败，
// 返回前不会产生任何状态变更。
var (
	ErrProjectNotFound        = errors.New("project not found")
	ErrNotUnlocked            = errors.New("project not unlocked")
	ErrAlreadyUnlocked        = errors.New("project already unlocked")
	ErrInsufficientPayment    = errors.New("insufficient payment")
	ErrCannotReviewOwnProject = errors.New("cannot review own project")
	ErrInvalidRating          = errors.New("invalid rating")
	ErrTransferFailed         = errors.New("transfer failed")
)
