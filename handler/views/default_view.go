package views

// Default default view
type Default struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DefaultSuccess returned by operations without a result
var DefaultSuccess = Default{
	Code:    0,
	Message: "success",
}
