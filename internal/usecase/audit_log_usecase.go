package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// AuditLogUsecase は /audit-logs の業務ロジック。
// 黙って捨てた明細・拒否した作成を後から調べるための内部向け画面用。
type AuditLogUsecase struct {
	auditRepo repo.AuditLogRepository
}

func NewAuditLogUsecase(auditRepo repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{auditRepo: auditRepo}
}

type ListAuditLogsInput struct {
	Action *model.AuditAction
	CartID *int64
	Limit  int
	Offset int
}

type AuditLogListOutput struct {
	Items []model.AuditLog `json:"items"`
}

func (u *AuditLogUsecase) ListAuditLogs(ctx context.Context, in ListAuditLogsInput) (AuditLogListOutput, error) {
	if in.Limit < 0 || in.Limit > 200 {
		return AuditLogListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if in.Offset < 0 {
		return AuditLogListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid offset")
	}
	if in.Action != nil {
		switch *in.Action {
		case model.AuditActionSegmentDropped, model.AuditActionUnknownProducts:
		default:
			return AuditLogListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid action")
		}
	}

	logs, err := u.auditRepo.List(ctx, repo.AuditLogFilter{
		Action: in.Action,
		CartID: in.CartID,
		Limit:  in.Limit,
		Offset: in.Offset,
	})
	if err != nil {
		return AuditLogListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AuditLogListOutput{Items: logs}, nil
}
