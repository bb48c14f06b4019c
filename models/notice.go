package models

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a transient, user-visible message. The server emits one per
// completed export sub-action and one per catalog source failure; clients
// are responsible for auto-dismissing them.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}
