// Package apperrors lists the result codes returned in the "code" field of every travel API response.
package apperrors

// ResultCode is the numeric status carried by the response envelope. Zero is success.
type ResultCode int

const (
	CodeSuccess ResultCode = 0

	// authentication 10xxx
	CodeWxLoginFailed    ResultCode = 10001
	CodeTokenInvalid     ResultCode = 10002
	CodeAccessDenied     ResultCode = 10003
	CodeAdminLoginFailed ResultCode = 10004

	// spots 20xxx
	CodeSpotNotFound ResultCode = 20001
	CodeSpotOffline  ResultCode = 20002

	// guides 30xxx
	CodeGuideNotFound ResultCode = 30001
	CodeGuideOffline  ResultCode = 30002

	// orders 40xxx
	CodeOrderNotFound         ResultCode = 40001
	CodeOrderStatusError      ResultCode = 40002
	CodeOrderAlreadyPaid      ResultCode = 40003
	CodeOrderAlreadyCancelled ResultCode = 40004

	// ratings 50xxx
	CodeRatingInvalid ResultCode = 50001

	// general 60xxx
	CodeParamError  ResultCode = 60001
	CodeSystemError ResultCode = 60002
)

var codeNames = map[ResultCode]string{
	CodeSuccess:               "success",
	CodeWxLoginFailed:         "wx_login_failed",
	CodeTokenInvalid:          "token_invalid",
	CodeAccessDenied:          "access_denied",
	CodeAdminLoginFailed:      "admin_login_failed",
	CodeSpotNotFound:          "spot_not_found",
	CodeSpotOffline:           "spot_offline",
	CodeGuideNotFound:         "guide_not_found",
	CodeGuideOffline:          "guide_offline",
	CodeOrderNotFound:         "order_not_found",
	CodeOrderStatusError:      "order_status_error",
	CodeOrderAlreadyPaid:      "order_already_paid",
	CodeOrderAlreadyCancelled: "order_already_cancelled",
	CodeRatingInvalid:         "rating_invalid",
	CodeParamError:            "param_error",
	CodeSystemError:           "system_error",
}

// String returns the symbolic name of a known code, e.g. "token_invalid".
func (c ResultCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsAuthError reports whether the code is in the authentication range.
func (c ResultCode) IsAuthError() bool {
	return c >= 10000 && c < 20000
}
