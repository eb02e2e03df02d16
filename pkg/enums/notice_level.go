package enums

import "fmt"

// NoticeLevel classifies the transient messages shown to shoppers after an action.
type NoticeLevel string

const (
	NoticeLevelInfo    NoticeLevel = "info"
	NoticeLevelSuccess NoticeLevel = "success"
	NoticeLevelWarning NoticeLevel = "warning"
)

var validNoticeLevels = []NoticeLevel{
	NoticeLevelInfo,
	NoticeLevelSuccess,
	NoticeLevelWarning,
}

// String implements fmt.Stringer.
func (n NoticeLevel) String() string {
	return string(n)
}

// IsValid reports whether the value is a known NoticeLevel.
func (n NoticeLevel) IsValid() bool {
	for _, candidate := range validNoticeLevels {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNoticeLevel converts raw input into a NoticeLevel.
func ParseNoticeLevel(value string) (NoticeLevel, error) {
	for _, candidate := range validNoticeLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notice level %q", value)
}
