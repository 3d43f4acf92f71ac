package usecase

import "context"

type ImagesInfra interface {
	UploadProductImage(ctx context.Context, req *UploadImageReq) (string, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// ReportRenderer превращает данные дневного отчета в готовый документ.
type ReportRenderer interface {
	Render(report *DailyReportRes, format string) (*RenderedReport, error)
}

// SessionStore выдает и проверяет непрозрачные bearer-токены.
type SessionStore interface {
	Create(ctx context.Context, data *SessionData) (string, error)
	// Get возвращает (nil, nil), если токен неизвестен или истек.
	Get(ctx context.Context, token string) (*SessionData, error)
	Destroy(ctx context.Context, token string) error
}
