package client

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// user-facing message keys, English text doubles as the key
const (
	msgNetworkError       = "Network error, please try again"
	msgRequestFailed      = "Request failed"
	msgInvalidResponse    = "The server returned an invalid response"
	msgSessionExpired     = "Your session has expired, please log in again"
	msgServiceUnavailable = "The service is temporarily unavailable, please try again later"
)

func init() {
	zh := language.Chinese
	_ = message.SetString(zh, msgNetworkError, "网络错误")
	_ = message.SetString(zh, msgRequestFailed, "请求失败")
	_ = message.SetString(zh, msgInvalidResponse, "服务器响应无效")
	_ = message.SetString(zh, msgSessionExpired, "登录状态已失效，请重新登录")
	_ = message.SetString(zh, msgServiceUnavailable, "服务暂时不可用，请稍后再试")
}

var defaultPrinter = message.NewPrinter(language.English)

// newPrinter returns a printer for the configured language. Anything other than Chinese falls back to English.
func newPrinter(lang string) *message.Printer {
	switch strings.ToLower(lang) {
	case "zh", "zh-cn", "zh-hans", "zh_cn":
		return message.NewPrinter(language.Chinese)
	default:
		return defaultPrinter
	}
}
