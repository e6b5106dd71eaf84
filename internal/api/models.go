package api

// StatusRecord is one registry entry as returned by the NTS status API
// (b_no, b_stt, tax_type and so on). Fields are passed through to the
// caller uninterpreted.
type StatusRecord map[string]any

// statusResponse is the top-level shape of a successful response.
// Only the data array is consumed; the counters are informational.
type statusResponse struct {
	StatusCode string         `json:"status_code"`
	RequestCnt int            `json:"request_cnt"`
	MatchCnt   int            `json:"match_cnt"`
	Data       []StatusRecord `json:"data"`
}
