package consts

const (
	GeminiBaseURL = "https://generativelanguage.googleapis.com"
)

type Model string

const (
	GeminiFlashImage Model = "gemini-2.5-flash-image"
	GeminiProImage   Model = "gemini-3-pro-image-preview"
)

func (m Model) String() string {
	return string(m)
}

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusQueued  TaskStatus = "queued"
	TaskStatusRunning TaskStatus = "running"
	TaskStatusSucceed TaskStatus = "succeed"
	TaskStatusFailed  TaskStatus = "failed"
)

func (s TaskStatus) String() string {
	return string(s)
}

// MIME types accepted as edit input.
var SupportedImageMIMETypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
}

func SupportedImageMIMEType(mimeType string) bool {
	_, ok := SupportedImageMIMETypes[mimeType]
	return ok
}
