// Package l10n is the zh/en string table for user-facing labels. Core logic
// never branches on locale; callers pass the language explicitly.
package l10n

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matchdayhq/matchday/go/clients/footballdata"
)

// Language is a supported UI language code.
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// Parse maps a stored language code to a Language, defaulting to Chinese.
func Parse(code string) Language {
	if Language(code) == English {
		return English
	}

	return Chinese
}

func pick(lang Language, zh, en string) string {
	if lang == English {
		return en
	}

	return zh
}

// StatusLabel returns the short display label for a match status.
// Unrecognized statuses are shown verbatim.
func StatusLabel(lang Language, status string) string {
	switch status {
	case footballdata.StatusFinished:
		return pick(lang, "完场", "FT")
	case footballdata.StatusInPlay:
		return pick(lang, "进行中", "LIVE")
	case footballdata.StatusPaused:
		return pick(lang, "中场", "HT")
	case footballdata.StatusExtraTime:
		return pick(lang, "加时", "ET")
	case footballdata.StatusPenaltyShootout:
		return pick(lang, "点球", "PEN")
	case footballdata.StatusScheduled, footballdata.StatusTimed:
		return pick(lang, "未开始", "Upcoming")
	case footballdata.StatusPostponed:
		return pick(lang, "延期", "Postponed")
	case footballdata.StatusCancelled:
		return pick(lang, "取消", "Cancelled")
	case footballdata.StatusSuspended:
		return pick(lang, "中断", "Suspended")
	default:
		return status
	}
}

// PositionLabel returns the display label for a squad position.
func PositionLabel(lang Language, position string) string {
	switch position {
	case footballdata.PositionGoalkeeper:
		return pick(lang, "门将", "GK")
	case footballdata.PositionDefence:
		return pick(lang, "后卫", "DEF")
	case footballdata.PositionMidfield:
		return pick(lang, "中场", "MID")
	case footballdata.PositionOffence:
		return pick(lang, "前锋", "FWD")
	case "":
		return pick(lang, "未知", "N/A")
	default:
		return position
	}
}

// StandingGroupLabel names a standings table by its group or type.
func StandingGroupLabel(lang Language, g footballdata.StandingGroup) string {
	if g.Group != nil {
		return strings.Replace(*g.Group, "GROUP_", pick(lang, "小组 ", "Group "), 1)
	}

	if g.Type == nil {
		return ""
	}

	switch *g.Type {
	case "TOTAL":
		return pick(lang, "总榜", "Overall")
	case "HOME":
		return pick(lang, "主场", "Home")
	case "AWAY":
		return pick(lang, "客场", "Away")
	default:
		return *g.Type
	}
}

// ErrorMessage maps a client error to a short human-readable message.
func ErrorMessage(lang Language, err error) string {
	var serverErr *footballdata.ServerError
	var decodeErr *footballdata.DecodeError

	switch {
	case errors.Is(err, footballdata.ErrRateLimited):
		return pick(lang, "请求过于频繁，请稍后再试", "Too many requests, try again later")
	case errors.Is(err, footballdata.ErrUnauthorized):
		return pick(lang, "API密钥无效，请在设置中配置", "Invalid API key, configure in Settings")
	case errors.Is(err, footballdata.ErrNotFound):
		return pick(lang, "未找到请求的资源", "Resource not found")
	case errors.As(err, &serverErr):
		return fmt.Sprintf(pick(lang, "服务器错误 (%d)", "Server error (%d)"), serverErr.StatusCode)
	case errors.As(err, &decodeErr):
		return fmt.Sprintf(pick(lang, "数据解析错误: %v", "Data error: %v"), decodeErr.Err)
	default:
		return pick(lang, "无效的服务器响应", "Invalid server response")
	}
}

var weekdaysZH = [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// DateLabel renders a calendar-date header for schedule grouping.
func DateLabel(lang Language, t time.Time) string {
	if lang == English {
		return t.Format("Mon, Jan 2")
	}

	return fmt.Sprintf("%d月%d日 %s", int(t.Month()), t.Day(), weekdaysZH[int(t.Weekday())])
}

// MatchdayLabel names a round of fixtures.
func MatchdayLabel(lang Language, n int) string {
	return fmt.Sprintf(pick(lang, "第%d轮", "Matchday %d"), n)
}
