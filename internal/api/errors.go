package api

import (
	"fmt"
	"net/http"
)

// statusMessages maps the error codes documented for the NTS status API
// to the messages shown to users. Unknown codes fall through to the
// generic message in APIError.Error.
var statusMessages = map[int]string{
	http.StatusBadRequest:            "잘못된 요청입니다. 요청 형식을 확인해주세요.",
	http.StatusNotFound:              "요청한 API를 찾을 수 없습니다.",
	http.StatusLengthRequired:        "필수 요청 파라미터가 누락되었습니다.",
	http.StatusRequestEntityTooLarge: "사업자등록번호는 한 번에 최대 100개까지 조회할 수 있습니다.",
	http.StatusInternalServerError:   "국세청 서버 오류입니다. 잠시 후 다시 시도해주세요.",
}

// APIError is a non-200 response from the status API.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	if msg, ok := statusMessages[e.StatusCode]; ok {
		return msg
	}
	return fmt.Sprintf("알 수 없는 오류가 발생했습니다 (status code = %d)", e.StatusCode)
}
